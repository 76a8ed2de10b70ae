package maze

// EligibleMask computes which neighbors of p are in bounds and still
// Disconnected, caches the result on the cell, and returns it.
func (g *Grid) EligibleMask(p Pos) Mask {
	var m Mask
	for _, d := range Directions() {
		n, ok := g.Neighbor(p, d)
		if !ok {
			continue
		}
		if g.cells[g.Index(n)].state == Disconnected {
			m = m.With(d)
		}
	}
	g.cells[g.Index(p)].mask = m
	return m
}
