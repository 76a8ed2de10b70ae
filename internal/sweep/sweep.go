// Package sweep runs many seeded maze generations in parallel and summarizes
// how the growth process behaved.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"cellmaze/internal/maze"
	"cellmaze/internal/nav"
	"cellmaze/internal/sims/growth"
)

// ErrNoRuns is returned when a sweep is asked for zero runs.
var ErrNoRuns = errors.New("sweep: at least one run is required")

// Config describes a batch of runs. Run i uses seed Maze.Seed+i.
type Config struct {
	Maze     maze.Config
	Runs     int
	Workers  int
	MaxTicks int
}

// DefaultConfig returns a modest batch over the default maze.
func DefaultConfig() Config {
	return Config{
		Maze:     maze.DefaultConfig(),
		Runs:     64,
		Workers:  runtime.NumCPU(),
		MaxTicks: 100000,
	}
}

// Sample is the outcome of one run.
type Sample struct {
	Seed     int64
	Ticks    int
	Stats    maze.Stats
	Leaves   int
	Solution int // moves from the origin to the far corner
}

// Summary describes the distribution of one measurement.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	P90    float64
	Max    float64
}

// Report collects the samples of a sweep in seed order with summaries.
type Report struct {
	Samples  []Sample
	Ticks    Summary
	Reseeds  Summary
	DeadEnds Summary
	Leaves   Summary
	Solution Summary
}

// Run executes the sweep. Results do not depend on the worker count.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if cfg.Runs <= 0 {
		return Report{}, ErrNoRuns
	}
	if err := cfg.Maze.Validate(); err != nil {
		return Report{}, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	samples := make([]Sample, cfg.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Runs; i++ {
		seed := cfg.Maze.Seed + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := runOne(cfg, seed)
			if err != nil {
				return err
			}
			samples[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return buildReport(samples), nil
}

func runOne(cfg Config, seed int64) (Sample, error) {
	mc := cfg.Maze
	mc.Seed = seed
	gen, err := growth.New(mc)
	if err != nil {
		return Sample{}, err
	}
	ticks, err := gen.Run(cfg.MaxTicks)
	if err != nil {
		return Sample{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	grid := gen.Grid()
	if err := maze.Verify(grid); err != nil {
		return Sample{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	path, err := nav.Build(grid).Path(grid.Origin(), nav.FarCorner(grid.Dim()))
	if err != nil {
		return Sample{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	return Sample{
		Seed:     seed,
		Ticks:    ticks,
		Stats:    gen.Stats(),
		Leaves:   grid.Leaves(),
		Solution: len(path) - 1,
	}, nil
}

func buildReport(samples []Sample) Report {
	pick := func(f func(Sample) int) Summary {
		xs := make([]float64, len(samples))
		for i, s := range samples {
			xs[i] = float64(f(s))
		}
		return Summarize(xs)
	}
	return Report{
		Samples:  samples,
		Ticks:    pick(func(s Sample) int { return s.Ticks }),
		Reseeds:  pick(func(s Sample) int { return s.Stats.Reseeds }),
		DeadEnds: pick(func(s Sample) int { return s.Stats.DeadEnds }),
		Leaves:   pick(func(s Sample) int { return s.Leaves }),
		Solution: pick(func(s Sample) int { return s.Solution }),
	}
}

// Summarize computes the distribution of xs. It does not modify xs.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	s := Summary{
		N:      len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(sorted, nil)
	} else {
		s.Mean = sorted[0]
	}
	return s
}
