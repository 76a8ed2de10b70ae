package growth

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cellmaze/internal/core"
	"cellmaze/internal/maze"
	"cellmaze/internal/monitoring"
)

func newGenerator(t *testing.T, dim int, seed int64) *Generator {
	t.Helper()
	cfg := maze.DefaultConfig()
	cfg.Dimension = dim
	cfg.Seed = seed
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Lookup("maze")
	if !ok {
		t.Fatal("maze sim not registered")
	}
	sim, err := factory(map[string]string{"dim": "3", "origin": "2,2,2", "seed": "5"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	gen, ok := sim.(*Generator)
	if !ok {
		t.Fatalf("factory returned %T", sim)
	}
	if got := gen.Grid().Origin(); got != (maze.Pos{2, 2, 2}) {
		t.Fatalf("origin = %v", got)
	}
	if _, err := factory(map[string]string{"dim": "3", "origin": "3,0,0"}); !errors.Is(err, maze.ErrOriginOutOfBounds) {
		t.Fatalf("out-of-range origin err = %v", err)
	}
}

func TestResetReplaysSameMaze(t *testing.T) {
	defer monitoring.Quiet()()

	g := newGenerator(t, 4, 77)
	ticks, err := g.Run(0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	first := g.Grid().Snapshot()
	firstStats := g.Stats()

	g.Reset(0)
	if g.Done() || g.Stats().Ticks != 0 {
		t.Fatal("Reset should rewind to tick zero")
	}
	again, err := g.Run(0)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if again != ticks {
		t.Fatalf("replay took %d ticks, want %d", again, ticks)
	}
	if diff := cmp.Diff(first, g.Grid().Snapshot(), cmp.AllowUnexported(maze.Cell{})); diff != "" {
		t.Fatalf("replay differs (-first +again):\n%s", diff)
	}
	if diff := cmp.Diff(firstStats, g.Stats()); diff != "" {
		t.Fatalf("stats differ (-first +again):\n%s", diff)
	}

	other := newGenerator(t, 4, 77)
	other.Reset(78)
	other.Run(0)
	if cmp.Equal(first, other.Grid().Snapshot(), cmp.AllowUnexported(maze.Cell{})) {
		t.Fatal("a different seed produced an identical maze")
	}
}

func TestResetRecordsNewSeed(t *testing.T) {
	defer monitoring.Quiet()()

	g := newGenerator(t, 3, 77)
	g.Reset(501)
	if got := g.Config().Seed; got != 501 {
		t.Fatalf("config seed = %d after Reset(501), want 501", got)
	}
	if got := seedParam(g); got != "501" {
		t.Fatalf("seed parameter = %q, want 501", got)
	}
	g.Run(0)
	reseeded := g.Grid().Snapshot()

	// Rebuilding from the reported config reproduces the same maze.
	again, err := New(g.Config())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	again.Run(0)
	if diff := cmp.Diff(reseeded, again.Grid().Snapshot(), cmp.AllowUnexported(maze.Cell{})); diff != "" {
		t.Fatalf("reported seed does not reproduce the maze (-reset +rebuilt):\n%s", diff)
	}

	// Zero keeps the current seed.
	g.Reset(0)
	if got := g.Config().Seed; got != 501 {
		t.Fatalf("config seed = %d after Reset(0), want 501", got)
	}
}

func seedParam(g *Generator) string {
	for _, grp := range g.Parameters().Groups {
		for _, p := range grp.Params {
			if p.Key == "seed" {
				return p.Value
			}
		}
	}
	return ""
}

func TestFactoryRejectsBadValues(t *testing.T) {
	factory, ok := core.Lookup("maze")
	if !ok {
		t.Fatal("maze sim not registered")
	}
	if _, err := factory(map[string]string{"dim": "-2"}); !errors.Is(err, maze.ErrInvalidDimension) {
		t.Fatalf("dim -2 err = %v, want ErrInvalidDimension", err)
	}
	if _, err := factory(map[string]string{"branch_prob": "0"}); !errors.Is(err, maze.ErrStallingBranchProb) {
		t.Fatalf("branch_prob 0 err = %v, want ErrStallingBranchProb", err)
	}
}

func TestRunTickLimit(t *testing.T) {
	defer monitoring.Quiet()()

	g := newGenerator(t, 6, 1)
	ticks, err := g.Run(2)
	if !errors.Is(err, ErrTickLimit) {
		t.Fatalf("err = %v, want ErrTickLimit", err)
	}
	if ticks != 2 {
		t.Fatalf("ticks = %d, want 2", ticks)
	}
}

func TestStepAfterDoneIsNoop(t *testing.T) {
	defer monitoring.Quiet()()

	g := newGenerator(t, 3, 9)
	if _, err := g.Run(0); err != nil {
		t.Fatalf("Run: %v", err)
	}
	ticks := g.Stats().Ticks
	if !g.Step() {
		t.Fatal("Step after completion should report done")
	}
	if g.Stats().Ticks != ticks {
		t.Fatal("Step after completion advanced the engine")
	}
}

func TestCompletionIsLogged(t *testing.T) {
	var lines []string
	prev := monitoring.Logf
	monitoring.SetLogger(func(format string, v ...interface{}) { lines = append(lines, format) })
	defer monitoring.SetLogger(prev)

	g := newGenerator(t, 2, 3)
	if _, err := g.Run(0); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("logged %d lines, want 1", len(lines))
	}
}

func TestLayerStrip(t *testing.T) {
	g := newGenerator(t, 3, 1)
	size := g.Size()
	if size.W != 11 || size.H != 3 {
		t.Fatalf("size = %+v, want 11x3", size)
	}
	if len(g.Cells()) != size.W*size.H {
		t.Fatalf("cells = %d, want %d", len(g.Cells()), size.W*size.H)
	}

	col, row := StripPos(3, maze.Pos{2, 1, 0})
	if col != 8 || row != 1 {
		t.Fatalf("StripPos = %d,%d, want 8,1", col, row)
	}

	at := func(col, row int) uint8 { return g.Cells()[row*size.W+col] }
	for row := 0; row < 3; row++ {
		if at(3, row) != DisplayGutter || at(7, row) != DisplayGutter {
			t.Fatalf("row %d gutter columns not set", row)
		}
	}
	if at(0, 0) != uint8(maze.Seed) {
		t.Fatalf("origin pixel = %d, want seed", at(0, 0))
	}
	if at(1, 0) != uint8(maze.Disconnected) {
		t.Fatalf("pixel next to origin = %d, want disconnected", at(1, 0))
	}
	if len(g.Palette()) <= int(DisplayOrigin) {
		t.Fatal("palette does not cover every display value")
	}
}

func TestParameters(t *testing.T) {
	g := newGenerator(t, 3, 21)
	snap := g.Parameters()
	if len(snap.Groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(snap.Groups))
	}
	values := map[string]string{}
	for _, grp := range snap.Groups {
		for _, p := range grp.Params {
			values[p.Key] = p.Value
		}
	}
	want := map[string]string{
		"dim":         "3",
		"origin":      "0,0,0",
		"seed":        "21",
		"branch_prob": "5",
		"turn_prob":   "10",
		"ticks":       "0",
		"joined":      "1",
		"invites":     "0",
		"branches":    "0",
		"reseeds":     "0",
		"dead_ends":   "0",
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("parameters (-want +got):\n%s", diff)
	}
	if snap.Groups[2].Summary != "growing" {
		t.Fatalf("progress summary = %q", snap.Groups[2].Summary)
	}
}
