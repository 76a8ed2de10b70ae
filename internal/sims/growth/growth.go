// Package growth wraps the maze engine as a registered, seedable simulation.
package growth

import (
	"errors"
	"fmt"

	"cellmaze/internal/core"
	"cellmaze/internal/maze"
	"cellmaze/internal/monitoring"
	prng "cellmaze/pkg/core"
)

// ErrTickLimit is returned by Run when the maze is still growing after the
// allowed number of ticks.
var ErrTickLimit = errors.New("growth: tick limit reached before the maze was complete")

// Generator owns one grid, its engine and its random source.
type Generator struct {
	cfg     maze.Config
	grid    *maze.Grid
	engine  *maze.Engine
	rng     *prng.RNG
	display *core.ByteGrid
	done    bool
}

// New validates cfg and returns a generator positioned at tick zero.
func New(cfg maze.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := maze.NewGridWithOrigin(cfg.Dimension, cfg.Origin)
	if err != nil {
		return nil, err
	}
	rng := prng.NewRNG(cfg.Seed)
	w, h := stripSize(cfg.Dimension)
	g := &Generator{
		cfg:     cfg,
		grid:    grid,
		engine:  maze.NewEngine(grid, rng, cfg.Params),
		rng:     rng,
		display: core.NewByteGrid(w, h),
	}
	g.rebuildDisplay()
	return g, nil
}

// Name returns the simulation identifier.
func (g *Generator) Name() string { return "maze" }

// Size reports the dimensions of the layer strip display buffer.
func (g *Generator) Size() core.Size { return core.Size{W: g.display.W, H: g.display.H} }

// Cells exposes the layer strip display buffer.
func (g *Generator) Cells() []uint8 { return g.display.Cells() }

// Config returns the configuration the generator was built with.
func (g *Generator) Config() maze.Config { return g.cfg }

// Grid exposes the grid being grown.
func (g *Generator) Grid() *maze.Grid { return g.grid }

// Stats returns the engine counters for the current run.
func (g *Generator) Stats() maze.Stats { return g.engine.Stats() }

// Done reports whether the last step found no Disconnected cell.
func (g *Generator) Done() bool { return g.done }

// Reset clears the grid and restarts the random sequence. A zero seed reuses
// the configured one; any other seed replaces it.
func (g *Generator) Reset(seed int64) {
	if seed != 0 {
		g.cfg.Seed = seed
	}
	g.rng.Reseed(g.cfg.Seed)
	g.grid.Reset()
	g.engine.ResetStats()
	g.done = false
	g.rebuildDisplay()
}

// Step advances the maze by one tick. Once complete it no longer mutates the
// grid.
func (g *Generator) Step() bool {
	if g.done {
		return true
	}
	g.done = g.engine.Step()
	g.rebuildDisplay()
	if g.done {
		st := g.engine.Stats()
		monitoring.Logf("maze %d³ complete after %d ticks (%d reseeds, %d dead ends)",
			g.cfg.Dimension, st.Ticks, st.Reseeds, st.DeadEnds)
	}
	return g.done
}

// Run steps until the maze is complete or maxTicks ticks have run. A
// non-positive maxTicks means no limit.
func (g *Generator) Run(maxTicks int) (int, error) {
	for !g.done {
		if maxTicks > 0 && g.engine.Stats().Ticks >= maxTicks {
			return g.engine.Stats().Ticks, fmt.Errorf("%w (%d)", ErrTickLimit, maxTicks)
		}
		g.Step()
	}
	return g.engine.Stats().Ticks, nil
}

func init() {
	core.Register("maze", func(cfg map[string]string) (core.Sim, error) {
		return New(maze.FromMap(cfg))
	})
}
