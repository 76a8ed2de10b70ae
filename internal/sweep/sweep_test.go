package sweep

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellmaze/internal/maze"
	"cellmaze/internal/monitoring"
)

func smallConfig(runs, workers int) Config {
	cfg := DefaultConfig()
	cfg.Maze.Dimension = 4
	cfg.Maze.Seed = 100
	cfg.Runs = runs
	cfg.Workers = workers
	return cfg
}

func TestRunIsIndependentOfWorkerCount(t *testing.T) {
	defer monitoring.Quiet()()

	serial, err := Run(context.Background(), smallConfig(12, 1))
	require.NoError(t, err)
	parallel, err := Run(context.Background(), smallConfig(12, 4))
	require.NoError(t, err)

	require.Len(t, serial.Samples, 12)
	assert.Equal(t, serial, parallel)

	for i, s := range serial.Samples {
		assert.Equal(t, int64(100+i), s.Seed)
		assert.Positive(t, s.Ticks)
		assert.Equal(t, s.Ticks, s.Stats.Ticks)
		assert.GreaterOrEqual(t, s.Solution, 9, "far corner is at least 3+3+3 moves away")
		assert.Positive(t, s.Leaves)
	}
	assert.Equal(t, 12, serial.Ticks.N)
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, err := Run(context.Background(), smallConfig(0, 1))
	assert.ErrorIs(t, err, ErrNoRuns)

	cfg := smallConfig(2, 1)
	cfg.Maze.Dimension = 0
	_, err = Run(context.Background(), cfg)
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, smallConfig(8, 2))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	xs := []float64{5, 1, 4, 2, 3}
	s := Summarize(xs)
	assert.Equal(t, 5, s.N)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, 3.0, s.Median)
	assert.Equal(t, 5.0, s.P90)
	assert.InDelta(t, 3.0, s.Mean, 1e-9)
	assert.InDelta(t, 1.5811, s.StdDev, 1e-3)
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, xs, "input must not be reordered")

	one := Summarize([]float64{7})
	assert.Equal(t, 7.0, one.Mean)
	assert.Zero(t, one.StdDev)
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestReportOutputs(t *testing.T) {
	defer monitoring.Quiet()()

	r, err := Run(context.Background(), smallConfig(6, 2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, r))
	out := buf.String()
	for _, metric := range []string{"ticks", "reseeds", "dead ends", "leaves", "solution"} {
		assert.Contains(t, out, metric)
	}
	assert.Equal(t, 6, strings.Count(out, "\n"))

	path := filepath.Join(t.TempDir(), "ticks.png")
	require.NoError(t, WriteHistogram(path, r))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.ErrorIs(t, WriteHistogram(path, Report{}), ErrNoSamples)
}
