//go:build ebiten

package app

import (
	"time"

	"cellmaze/internal/maze"
	"cellmaze/internal/monitoring"
	"cellmaze/internal/render"
	"cellmaze/internal/sims/growth"
	"cellmaze/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 260

var walkKeys = map[ebiten.Key]maze.Direction{
	ebiten.KeyW: maze.North,
	ebiten.KeyS: maze.South,
	ebiten.KeyA: maze.West,
	ebiten.KeyD: maze.East,
	ebiten.KeyQ: maze.Up,
	ebiten.KeyE: maze.Down,
}

// Game adapts a maze generator to the ebiten.Game interface.
type Game struct {
	gen     *growth.Generator
	painter *render.GridPainter
	hud     *ui.HUD
	walk    *Walk

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided generator.
func New(gen *growth.Generator, scale int, seed int64) *Game {
	size := gen.Size()
	return &Game{
		gen:     gen,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(gen, hudWidth),
		scale:   scale,
		seed:    seed,
	}
}

// Reset regrows the maze from scratch with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.gen.Reset(seed)
	g.tickOnce = false
	g.walk = nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.toggleWalk()
	}
	if g.walk != nil {
		for key, d := range walkKeys {
			if inpututil.IsKeyJustPressed(key) {
				g.walk.Move(d)
			}
		}
		g.hud.SetStatus(g.walk.Status()...)
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if !g.paused || g.tickOnce {
		g.gen.Step()
		g.tickOnce = false
	}
	if g.gen.Done() {
		g.hud.SetStatus("Complete. Tab to walk")
	} else {
		g.hud.SetStatus()
	}
	return nil
}

func (g *Game) toggleWalk() {
	if g.walk != nil {
		g.walk = nil
		return
	}
	w, err := StartWalk(g.gen.Grid())
	if err != nil {
		monitoring.Logf("walk unavailable: %v", err)
		return
	}
	g.walk = w
}

// Draw renders the layer strip and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	var marks []render.Mark
	if g.walk != nil {
		marks = g.walk.Marks()
	}
	g.painter.Blit(screen, g.gen.Cells(), g.gen.Palette(), marks, g.scale)
	w, _ := g.painter.Size()
	g.hud.Draw(screen, w*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.gen.Size()
	h := s.H * g.scale
	if h < 240 {
		h = 240
	}
	return s.W*g.scale + g.hud.Width(), h
}
