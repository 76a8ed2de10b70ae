package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive edge length.
	ErrInvalidDimension = errors.New("maze: dimension must be a positive integer")
	// ErrOriginOutOfBounds is returned when the requested origin does not lie
	// inside the grid.
	ErrOriginOutOfBounds = errors.New("maze: origin outside grid")
)

// Grid is a D×D×D cube of cells stored in one flat buffer in raster order.
type Grid struct {
	dim    int
	origin Pos
	cells  []Cell

	// growing is the active-growth flag: whether the previous sweep produced
	// a Seed. Recovery only runs while it is false.
	growing bool
}

// NewGrid creates a grid of edge length dim with its origin at (0,0,0).
func NewGrid(dim int) (*Grid, error) {
	return NewGridWithOrigin(dim, Pos{})
}

// NewGridWithOrigin creates a grid whose single initial Seed sits at origin.
func NewGridWithOrigin(dim int, origin Pos) (*Grid, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, dim)
	}
	g := &Grid{dim: dim, origin: origin, cells: make([]Cell, dim*dim*dim)}
	if !g.Contains(origin) {
		return nil, fmt.Errorf("%w: %v in grid of size %d", ErrOriginOutOfBounds, origin, dim)
	}
	g.Reset()
	return g, nil
}

// Reset returns every cell to Disconnected and reseeds the origin.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = newCell()
	}
	g.cells[g.Index(g.origin)].state = Seed
	g.growing = true
}

// Dim returns the edge length of the cube.
func (g *Grid) Dim() int { return g.dim }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Origin returns the position of the root cell.
func (g *Grid) Origin() Pos { return g.origin }

// GrowthPresent reports whether the last sweep produced a Seed.
func (g *Grid) GrowthPresent() bool { return g.growing }

// Index returns the buffer index for p. p must be inside the grid.
func (g *Grid) Index(p Pos) int {
	return p[0]*g.dim*g.dim + p[1]*g.dim + p[2]
}

// PosOf is the inverse of Index.
func (g *Grid) PosOf(i int) Pos {
	d := g.dim
	return Pos{i / (d * d), (i / d) % d, i % d}
}

// Contains reports whether every coordinate of p lies in [0, D).
func (g *Grid) Contains(p Pos) bool {
	for _, v := range p {
		if v < 0 || v >= g.dim {
			return false
		}
	}
	return true
}

// Neighbor returns the position next to p in direction d and whether it is
// inside the grid.
func (g *Grid) Neighbor(p Pos, d Direction) (Pos, bool) {
	n := p.Step(d)
	return n, g.Contains(n)
}

// State returns the state of the cell at p.
func (g *Grid) State(p Pos) State { return g.cells[g.Index(p)].state }

// Parent returns the parent direction of the cell at p, if set.
func (g *Grid) Parent(p Pos) (Direction, bool) { return g.cells[g.Index(p)].Parent() }

// Invite returns the invite direction of the cell at p, if set.
func (g *Grid) Invite(p Pos) (Direction, bool) { return g.cells[g.Index(p)].Invite() }

// Mask returns the cached eligibility mask of the cell at p.
func (g *Grid) Mask(p Pos) Mask { return g.cells[g.Index(p)].mask }

// Count returns how many cells are currently in state s.
func (g *Grid) Count(s State) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].state == s {
			n++
		}
	}
	return n
}

// Complete reports whether no Disconnected cell remains.
func (g *Grid) Complete() bool { return g.Count(Disconnected) == 0 }

// Snapshot copies every cell in raster order.
func (g *Grid) Snapshot() []Cell {
	return append([]Cell(nil), g.cells...)
}
