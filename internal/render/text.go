package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"cellmaze/internal/maze"
)

var parentGlyphs = [maze.NumDirections]byte{
	maze.North: 'n',
	maze.East:  'e',
	maze.Up:    'u',
	maze.South: 's',
	maze.West:  'w',
	maze.Down:  'd',
}

// Glyph returns the character used for the cell at p in text dumps: '.' for
// Disconnected, 'o' for the origin, otherwise the parent direction's initial.
// Seed and Invite cells are upper-cased.
func Glyph(g *maze.Grid, p maze.Pos) byte {
	st := g.State(p)
	if st == maze.Disconnected {
		return '.'
	}
	ch := byte('o')
	if d, ok := g.Parent(p); ok {
		ch = parentGlyphs[d]
	}
	if st == maze.Seed || st == maze.Invite {
		ch -= 'a' - 'A'
	}
	return ch
}

// WriteLayers prints the grid as a layer strip: one block per x layer, rows
// are y and columns are z.
func WriteLayers(w io.Writer, g *maze.Grid) error {
	bw := bufio.NewWriter(w)
	dim := g.Dim()

	headers := make([]string, dim)
	for x := range headers {
		headers[x] = fmt.Sprintf("%-*s", dim, fmt.Sprintf("x=%d", x))
	}
	fmt.Fprintln(bw, strings.TrimRight(strings.Join(headers, "  "), " "))

	row := make([]byte, 0, dim*(dim+2))
	for y := 0; y < dim; y++ {
		row = row[:0]
		for x := 0; x < dim; x++ {
			if x > 0 {
				row = append(row, ' ', ' ')
			}
			for z := 0; z < dim; z++ {
				row = append(row, Glyph(g, maze.Pos{x, y, z}))
			}
		}
		bw.Write(row)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WritePath prints a path one position per line.
func WritePath(w io.Writer, path []maze.Pos) error {
	bw := bufio.NewWriter(w)
	for i, p := range path {
		fmt.Fprintf(bw, "%3d  %s\n", i, maze.FormatPos(p))
	}
	return bw.Flush()
}
