// Package nav turns a grown maze into a walkable graph and moves a token
// through it.
package nav

import (
	"errors"
	"fmt"

	"cellmaze/internal/maze"
)

var (
	// ErrOutOfBounds indicates a position outside the maze.
	ErrOutOfBounds = errors.New("nav: position outside maze")
	// ErrNoPath indicates the two positions are not connected.
	ErrNoPath = errors.New("nav: no path between positions")
)

// Graph is the undirected adjacency list induced by the maze's parent links.
// It is immutable once built.
type Graph struct {
	dim   int
	adj   [][]maze.Pos
	edges int
}

// Build records, for every cell with a parent direction, an edge in both
// directions between the cell and that neighbor. It works on partially grown
// mazes too.
func Build(g *maze.Grid) *Graph {
	gr := &Graph{dim: g.Dim(), adj: make([][]maze.Pos, g.Len())}
	for i := 0; i < g.Len(); i++ {
		p := g.PosOf(i)
		d, ok := g.Parent(p)
		if !ok {
			continue
		}
		n, in := g.Neighbor(p, d)
		if !in {
			continue
		}
		gr.adj[i] = append(gr.adj[i], n)
		j := g.Index(n)
		gr.adj[j] = append(gr.adj[j], p)
		gr.edges++
	}
	return gr
}

// Dim returns the edge length of the maze the graph was built from.
func (gr *Graph) Dim() int { return gr.dim }

// Edges returns the number of undirected edges.
func (gr *Graph) Edges() int { return gr.edges }

// Contains reports whether p lies inside the maze.
func (gr *Graph) Contains(p maze.Pos) bool {
	for _, v := range p {
		if v < 0 || v >= gr.dim {
			return false
		}
	}
	return true
}

func (gr *Graph) index(p maze.Pos) int {
	return p[0]*gr.dim*gr.dim + p[1]*gr.dim + p[2]
}

// Neighbors returns the cells reachable from p in one move.
func (gr *Graph) Neighbors(p maze.Pos) []maze.Pos {
	if !gr.Contains(p) {
		return nil
	}
	return gr.adj[gr.index(p)]
}

// Legal reports whether a single move from a to b follows a maze edge.
func (gr *Graph) Legal(a, b maze.Pos) bool {
	for _, n := range gr.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}

// Path returns the cells from a to b inclusive along maze edges. In a
// finished maze the path is unique.
func (gr *Graph) Path(a, b maze.Pos) ([]maze.Pos, error) {
	if !gr.Contains(a) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, a)
	}
	if !gr.Contains(b) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, b)
	}

	prev := make([]int, len(gr.adj))
	for i := range prev {
		prev[i] = -1
	}
	start, goal := gr.index(a), gr.index(b)
	prev[start] = start
	queue := []maze.Pos{a}
	for len(queue) > 0 && prev[goal] < 0 {
		cur := queue[0]
		queue = queue[1:]
		ci := gr.index(cur)
		for _, n := range gr.adj[ci] {
			ni := gr.index(n)
			if prev[ni] >= 0 {
				continue
			}
			prev[ni] = ci
			queue = append(queue, n)
		}
	}
	if prev[goal] < 0 {
		return nil, fmt.Errorf("%w: %v to %v", ErrNoPath, a, b)
	}

	var rev []maze.Pos
	for i := goal; ; i = prev[i] {
		rev = append(rev, gr.pos(i))
		if i == start {
			break
		}
	}
	path := make([]maze.Pos, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path, nil
}

func (gr *Graph) pos(i int) maze.Pos {
	d := gr.dim
	return maze.Pos{i / (d * d), (i / d) % d, i % d}
}
