package core

// ByteGrid stores a 2D grid of byte-sized values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Set writes v at (x, y). Out of range coordinates are ignored.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.data[g.Index(x, y)] = v
}

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}
