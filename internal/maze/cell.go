package maze

// State enumerates the growth states a cell moves through.
type State uint8

const (
	// Disconnected cells have not joined the tree yet.
	Disconnected State = iota
	// Seed cells are looking for a Disconnected neighbor to grow into.
	Seed
	// Invite cells have offered a connection to one neighbor.
	Invite
	// Connected cells have finished growing, though recovery may reseed them.
	Connected

	numStates
)

var stateNames = [numStates]string{"disconnected", "seed", "invite", "connected"}

// Valid reports whether s is one of the four defined states.
func (s State) Valid() bool { return s < numStates }

func (s State) String() string {
	if !s.Valid() {
		return "invalid"
	}
	return stateNames[s]
}

// noDirection marks an unset parent or invite direction.
const noDirection Direction = 0xff

// Cell is a single grid unit. Neighbors are never stored; they are looked up
// by position.
type Cell struct {
	state  State
	parent Direction
	invite Direction
	mask   Mask
}

func newCell() Cell {
	return Cell{state: Disconnected, parent: noDirection, invite: noDirection}
}

// State returns the cell's growth state.
func (c Cell) State() State { return c.state }

// Parent returns the direction toward the neighbor this cell joined through.
func (c Cell) Parent() (Direction, bool) { return c.parent, c.parent.Valid() }

// Invite returns the direction of the outstanding invitation while the cell
// is in the Invite state.
func (c Cell) Invite() (Direction, bool) { return c.invite, c.invite.Valid() }

// Mask returns the most recently computed eligibility mask. It is a snapshot
// and goes stale as soon as a neighbor changes.
func (c Cell) Mask() Mask { return c.mask }

// invites reports whether c is offering a connection toward a cell that sees
// c in direction d.
func (c Cell) invites(d Direction) bool {
	return c.state == Invite && c.invite.Valid() && c.invite.Opposite() == d
}
