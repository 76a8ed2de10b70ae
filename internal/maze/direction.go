package maze

import "math/bits"

// A Direction is one of the six axis-aligned unit steps between cells.
type Direction uint8

// Opposite directions are three indices apart.
const (
	North Direction = iota // -Y
	East                   // +Z
	Up                     // -X
	South                  // +Y
	West                   // -Z
	Down                   // +X

	NumDirections = 6
)

var offsets = [NumDirections]Pos{
	North: {0, -1, 0},
	East:  {0, 0, 1},
	Up:    {-1, 0, 0},
	South: {0, 1, 0},
	West:  {0, 0, -1},
	Down:  {1, 0, 0},
}

var directionNames = [NumDirections]string{"north", "east", "up", "south", "west", "down"}

// Opposite returns the direction pointing the other way along the same axis.
func (d Direction) Opposite() Direction {
	return (d + 3) % NumDirections
}

// Offset returns the unit vector for d.
func (d Direction) Offset() Pos {
	return offsets[d]
}

// Valid reports whether d is one of the six directions.
func (d Direction) Valid() bool { return d < NumDirections }

func (d Direction) String() string {
	if !d.Valid() {
		return "none"
	}
	return directionNames[d]
}

// Directions returns all six directions in index order.
func Directions() [NumDirections]Direction {
	return [NumDirections]Direction{North, East, Up, South, West, Down}
}

// A Mask is a set of directions, one bit per direction index.
type Mask uint8

// FullMask has every direction set.
const FullMask Mask = 1<<NumDirections - 1

// Has reports whether d is in the mask.
func (m Mask) Has(d Direction) bool { return m&(1<<d) != 0 }

// With returns the mask with d added.
func (m Mask) With(d Direction) Mask { return m | 1<<d }

// Count returns the number of directions in the mask.
func (m Mask) Count() int { return bits.OnesCount8(uint8(m & FullMask)) }

// Empty reports whether no direction is set.
func (m Mask) Empty() bool { return m&FullMask == 0 }

// A Pos addresses a cell by its (x, y, z) grid coordinates.
type Pos [3]int

// Step returns the position one cell away in direction d. The result may lie
// outside the grid.
func (p Pos) Step(d Direction) Pos {
	o := offsets[d]
	return Pos{p[0] + o[0], p[1] + o[1], p[2] + o[2]}
}

// X, Y and Z return the individual coordinates.
func (p Pos) X() int { return p[0] }
func (p Pos) Y() int { return p[1] }
func (p Pos) Z() int { return p[2] }
