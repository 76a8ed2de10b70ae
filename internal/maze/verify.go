package maze

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"
)

// Errors reported by Verify and PathToOrigin.
var (
	ErrIncomplete        = errors.New("maze: disconnected cell remains")
	ErrOriginHasParent   = errors.New("maze: origin has a parent")
	ErrOrphan            = errors.New("maze: cell has no parent")
	ErrParentOutOfBounds = errors.New("maze: parent direction leaves the grid")
	ErrCycle             = errors.New("maze: parent links form a cycle")
)

// Verify checks that the parent links of a finished grid form a spanning
// tree rooted at the origin. Every non-origin cell contributes exactly one
// edge, so D³-1 edges without a cycle connect all D³ cells.
func Verify(g *Grid) error {
	elems := make([]*disjoint.Element, len(g.cells))
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}

	for i := range g.cells {
		c := g.cells[i]
		p := g.PosOf(i)
		if c.state == Disconnected {
			return fmt.Errorf("%w: %v", ErrIncomplete, p)
		}
		parent, ok := c.Parent()
		if p == g.origin {
			if ok {
				return fmt.Errorf("%w: %v points %v", ErrOriginHasParent, p, parent)
			}
			continue
		}
		if !ok {
			return fmt.Errorf("%w: %v", ErrOrphan, p)
		}
		n, in := g.Neighbor(p, parent)
		if !in {
			return fmt.Errorf("%w: %v points %v", ErrParentOutOfBounds, p, parent)
		}
		a, b := elems[i], elems[g.Index(n)]
		if a.Find() == b.Find() {
			return fmt.Errorf("%w: edge %v-%v", ErrCycle, p, n)
		}
		disjoint.Union(a, b)
	}
	return nil
}

// PathToOrigin follows parent links from p and returns the visited cells,
// starting with p and ending with the origin.
func PathToOrigin(g *Grid, p Pos) ([]Pos, error) {
	path := []Pos{p}
	for cur := p; cur != g.origin; {
		if len(path) > len(g.cells) {
			return nil, fmt.Errorf("%w: from %v", ErrCycle, p)
		}
		d, ok := g.Parent(cur)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrOrphan, cur)
		}
		next, in := g.Neighbor(cur, d)
		if !in {
			return nil, fmt.Errorf("%w: %v points %v", ErrParentOutOfBounds, cur, d)
		}
		cur = next
		path = append(path, cur)
	}
	return path, nil
}

// Children returns the directions from p toward cells whose parent is p.
func (g *Grid) Children(p Pos) Mask {
	var m Mask
	for _, d := range Directions() {
		n, ok := g.Neighbor(p, d)
		if !ok {
			continue
		}
		if pd, ok := g.Parent(n); ok && pd == d.Opposite() {
			m = m.With(d)
		}
	}
	return m
}

// Leaves counts the cells no other cell hangs from.
func (g *Grid) Leaves() int {
	n := 0
	for i := range g.cells {
		if g.Children(g.PosOf(i)).Empty() {
			n++
		}
	}
	return n
}
