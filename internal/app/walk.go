package app

import (
	"errors"
	"fmt"
	"image/color"

	"cellmaze/internal/maze"
	"cellmaze/internal/nav"
	"cellmaze/internal/render"
	"cellmaze/internal/sims/growth"
)

// ErrMazeGrowing is returned when walking is requested before the maze is
// complete.
var ErrMazeGrowing = errors.New("app: maze is still growing")

var (
	playerColor = color.RGBA{R: 220, G: 0, B: 0, A: 255}
	goalColor   = color.RGBA{R: 255, G: 230, B: 0, A: 255}
)

// Walk tracks a player token on a finished maze.
type Walk struct {
	dim    int
	player *nav.Player
}

// StartWalk places a player on the origin of a complete grid, aimed at the
// corner farthest from it.
func StartWalk(g *maze.Grid) (*Walk, error) {
	if !g.Complete() {
		return nil, ErrMazeGrowing
	}
	if err := maze.Verify(g); err != nil {
		return nil, fmt.Errorf("app: cannot walk maze: %w", err)
	}
	return &Walk{
		dim:    g.Dim(),
		player: nav.NewPlayer(nav.Build(g), g.Origin(), goalFor(g.Dim(), g.Origin())),
	}, nil
}

// goalFor picks the far corner, or (0,0,0) when the origin already sits there.
func goalFor(dim int, origin maze.Pos) maze.Pos {
	goal := nav.FarCorner(dim)
	if goal == origin {
		return maze.Pos{}
	}
	return goal
}

// Player exposes the token.
func (w *Walk) Player() *nav.Player { return w.player }

// Move forwards to the player.
func (w *Walk) Move(d maze.Direction) bool { return w.player.Move(d) }

// Marks returns the goal and player highlights in layer strip coordinates.
// The player is drawn last so it stays visible on the goal.
func (w *Walk) Marks() []render.Mark {
	gc, gr := growth.StripPos(w.dim, w.player.Goal())
	pc, pr := growth.StripPos(w.dim, w.player.Pos())
	return []render.Mark{
		{X: gc, Y: gr, Color: goalColor},
		{X: pc, Y: pr, Color: playerColor},
	}
}

// Status summarises the walk for the HUD.
func (w *Walk) Status() []string {
	if w.player.AtGoal() {
		return []string{fmt.Sprintf("Goal reached in %d moves", w.player.Moves())}
	}
	lines := []string{
		"Walking " + maze.FormatPos(w.player.Pos()) + " -> " + maze.FormatPos(w.player.Goal()),
		fmt.Sprintf("Moves %d", w.player.Moves()),
	}
	if left, err := w.player.Remaining(); err == nil {
		lines = append(lines, fmt.Sprintf("Shortest remaining %d", left))
	}
	return lines
}
