// Command maze-sweep grows many seeded mazes in parallel and summarizes them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"cellmaze/internal/app"
	"cellmaze/internal/maze"
	"cellmaze/internal/monitoring"
	"cellmaze/internal/sweep"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	runs := flag.Int("runs", 64, "number of seeds to grow, starting at -seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	maxTicks := flag.Int("max-ticks", 100000, "fail a run after this many ticks (0 = no limit)")
	hist := flag.String("hist", "", "write a ticks histogram to this file (.png, .svg or .pdf)")
	verbose := flag.Bool("v", false, "log each completed maze")
	flag.Parse()

	if !*verbose {
		defer monitoring.Quiet()()
	}

	sc := sweep.Config{
		Maze:     maze.FromMap(cfg.SimConfig()),
		Runs:     *runs,
		Workers:  *workers,
		MaxTicks: *maxTicks,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d seeds from %d (%d³ cells, %d workers)\n",
		sc.Runs, sc.Maze.Seed, sc.Maze.Dimension, sc.Workers)
	start := time.Now()
	report, err := sweep.Run(ctx, sc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Completed in %s\n\n", time.Since(start).Round(time.Millisecond))

	if err := sweep.Fprint(os.Stdout, report); err != nil {
		log.Fatal(err)
	}
	if *hist != "" {
		if err := sweep.WriteHistogram(*hist, report); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nHistogram written to %s\n", *hist)
	}
}
