//go:build ebiten

package ui

import (
	"image/color"

	"cellmaze/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 14

// HUD renders the parameter panel to the right of the maze view.
type HUD struct {
	provider core.ParameterProvider
	width    int
	status   []string
}

// NewHUD constructs a HUD for the provided parameter source and panel width.
func NewHUD(provider core.ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{provider: provider, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// SetStatus replaces the free-form lines printed under the parameters.
func (h *HUD) SetStatus(lines ...string) {
	if h == nil {
		return
	}
	h.status = lines
}

// Draw prints the current snapshot starting at panelX.
func (h *HUD) Draw(dst *ebiten.Image, panelX int) {
	if h == nil || h.width == 0 || h.provider == nil {
		return
	}
	lines := Lines(h.provider.Parameters())
	if len(h.status) > 0 {
		lines = append(lines, "")
		lines = append(lines, h.status...)
	}
	y := lineHeight
	for _, line := range lines {
		text.Draw(dst, line, basicfont.Face7x13, panelX+8, y, color.White)
		y += lineHeight
	}
}
