package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// markRGBA paints a single pixel of a w-wide RGBA buffer.
func markRGBA(buf []byte, w, x, y int, col color.RGBA) {
	base := (y*w + x) * 4
	if x < 0 || x >= w || base < 0 || base+3 >= len(buf) {
		return
	}
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}

// Mark highlights one display cell with a fixed color, drawn over the
// palette colors.
type Mark struct {
	X, Y  int
	Color color.RGBA
}

// paintRGBA fills a w-wide RGBA buffer from palette indices and then applies
// the marks in order.
func paintRGBA(buf []byte, w int, cells []uint8, palette []color.RGBA, marks []Mark) {
	fillPaletteRGBA(buf, cells, palette)
	for _, m := range marks {
		markRGBA(buf, w, m.X, m.Y, m.Color)
	}
}
