package ui

import (
	"fmt"

	"cellmaze/internal/core"
)

// Lines flattens a parameter snapshot into the text rows shown on the HUD
// panel.
func Lines(s core.ParameterSnapshot) []string {
	var out []string
	for i, g := range s.Groups {
		if i > 0 {
			out = append(out, "")
		}
		title := g.Name
		if g.Summary != "" {
			title = fmt.Sprintf("%s (%s)", g.Name, g.Summary)
		}
		out = append(out, title)
		for _, p := range g.Params {
			out = append(out, fmt.Sprintf("  %-18s %s", p.Label, p.Value))
		}
	}
	return out
}
