package growth

import (
	"image/color"

	"cellmaze/internal/maze"
)

// Display values beyond the four cell states.
const (
	DisplayGutter = uint8(4)
	DisplayOrigin = uint8(5)
)

var growthPalette = []color.RGBA{
	maze.Disconnected: {R: 255, G: 255, B: 255, A: 255},
	maze.Seed:         {R: 0, G: 255, B: 0, A: 255},
	maze.Invite:       {R: 0, G: 0, B: 255, A: 255},
	maze.Connected:    {R: 255, G: 150, B: 0, A: 255},
	DisplayGutter:     {R: 128, G: 128, B: 128, A: 255},
	DisplayOrigin:     {R: 200, G: 100, B: 0, A: 255},
}

// Palette exposes the colors indexed by the display buffer values.
func (g *Generator) Palette() []color.RGBA {
	return growthPalette
}

// stripSize returns the layer strip dimensions for a cube of edge dim: the
// dim x-layers side by side with a one-column gutter between them.
func stripSize(dim int) (w, h int) {
	return dim*(dim+1) - 1, dim
}

// StripPos maps a cell to its column and row in the layer strip.
func StripPos(dim int, p maze.Pos) (col, row int) {
	return p.X()*(dim+1) + p.Z(), p.Y()
}

func (g *Generator) rebuildDisplay() {
	dim := g.grid.Dim()
	g.display.Fill(DisplayGutter)
	origin := g.grid.Origin()
	for x := 0; x < dim; x++ {
		for y := 0; y < dim; y++ {
			for z := 0; z < dim; z++ {
				p := maze.Pos{x, y, z}
				col, row := StripPos(dim, p)
				v := uint8(g.grid.State(p))
				if p == origin && g.grid.State(p) == maze.Connected {
					v = DisplayOrigin
				}
				g.display.Set(col, row, v)
			}
		}
	}
}
