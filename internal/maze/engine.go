package maze

import "fmt"

// Rand is the random source the engine draws from. *rand.Rand from
// math/rand/v2 and pkg/core.RNG both satisfy it.
type Rand interface {
	IntN(n int) int
}

// Stats counts what the engine has done since it was created or reset.
type Stats struct {
	Ticks    int
	Joins    int // Disconnected cells that accepted an invitation
	Invites  int // Seed cells that issued an invitation
	DeadEnds int // Seed cells with no room left to grow
	Branches int // Invite cells that fell back to Seed
	Reseeds  int // Connected cells revived by the recovery rule
}

// Engine advances a Grid one synchronous sweep at a time.
//
// The sweep mutates cells in place in raster order, so a cell visited later
// in a sweep sees neighbors already advanced earlier in the same sweep. The
// order of random draws is fixed: seeded runs are reproducible.
type Engine struct {
	grid   *Grid
	rng    Rand
	params Params
	stats  Stats
}

// NewEngine binds a grid to a random source and growth probabilities.
func NewEngine(g *Grid, rng Rand, params Params) *Engine {
	return &Engine{grid: g, rng: rng, params: params}
}

// Step runs the engine with default probabilities for a single tick.
func Step(g *Grid, rng Rand) bool {
	return NewEngine(g, rng, DefaultParams()).Step()
}

// Grid returns the grid being grown.
func (e *Engine) Grid() *Grid { return e.grid }

// Stats returns the counters accumulated so far.
func (e *Engine) Stats() Stats { return e.stats }

// ResetStats zeroes the counters.
func (e *Engine) ResetStats() { e.stats = Stats{} }

// Step applies the transition rules to every cell once and reports whether
// no cell was found Disconnected during the sweep.
func (e *Engine) Step() bool {
	g := e.grid
	dim := g.dim
	recovering := !g.growing
	disconnected := false
	seeded := false

	i := 0
	for x := 0; x < dim; x++ {
		for y := 0; y < dim; y++ {
			for z := 0; z < dim; z++ {
				p := Pos{x, y, z}
				c := &g.cells[i]
				i++

				switch c.state {
				case Disconnected:
					disconnected = true
					if e.join(p, c) {
						seeded = true
					}
				case Seed:
					e.grow(p, c)
				case Invite:
					if e.roll(e.params.BranchProb) {
						c.state = Seed
						c.invite = noDirection
						e.stats.Branches++
						seeded = true
					} else {
						c.state = Connected
						c.invite = noDirection
					}
				case Connected:
					if !recovering {
						continue
					}
					if g.EligibleMask(p).Empty() {
						continue
					}
					if e.roll(e.params.BranchProb) {
						c.state = Seed
						e.stats.Reseeds++
						seeded = true
					}
				default:
					panic(fmt.Sprintf("maze: cell %v in undefined state %d", p, c.state))
				}
			}
		}
	}

	g.growing = seeded
	e.stats.Ticks++
	return !disconnected
}

// join looks for a neighbor inviting p, lowest direction index first, and
// turns the cell into a Seed parented on it.
func (e *Engine) join(p Pos, c *Cell) bool {
	g := e.grid
	for _, d := range Directions() {
		n, ok := g.Neighbor(p, d)
		if !ok {
			continue
		}
		if !g.cells[g.Index(n)].invites(d) {
			continue
		}
		c.parent = d
		c.state = Seed
		e.stats.Joins++
		return true
	}
	return false
}

// grow turns a Seed into an Invite toward an eligible neighbor, or retires
// it when no neighbor is left.
func (e *Engine) grow(p Pos, c *Cell) {
	if e.grid.EligibleMask(p).Empty() {
		c.state = Connected
		e.stats.DeadEnds++
		return
	}
	c.invite = e.chooseDirection(c)
	c.state = Invite
	e.stats.Invites++
}

// chooseDirection picks an eligible direction for c. It loops until it hits
// a set bit, so c.mask must not be empty.
func (e *Engine) chooseDirection(c *Cell) Direction {
	var d Direction
	if e.roll(e.params.TurnProb) && c.parent.Valid() {
		d = c.parent.Opposite()
	} else {
		d = Direction(e.rng.IntN(NumDirections))
	}
	for !c.mask.Has(d) {
		d = Direction(e.rng.IntN(NumDirections))
	}
	return d
}

// roll draws once and reports a hit with probability pct percent.
func (e *Engine) roll(pct int) bool {
	return e.rng.IntN(100) < pct
}
