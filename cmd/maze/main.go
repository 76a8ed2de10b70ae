// Command maze grows one maze headlessly and prints it as a layer strip.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"cellmaze/internal/app"
	"cellmaze/internal/core"
	"cellmaze/internal/maze"
	"cellmaze/internal/monitoring"
	"cellmaze/internal/nav"
	"cellmaze/internal/render"
	"cellmaze/internal/sims/growth"
	"cellmaze/internal/ui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindSim(flag.CommandLine)
	maxTicks := flag.Int("max-ticks", 100000, "give up after this many ticks (0 = no limit)")
	watch := flag.Bool("watch", false, "print every tick instead of only the finished maze")
	tps := flag.Int("tps", cfg.TPS, "ticks per second while watching")
	solve := flag.Bool("solve", false, "print the path from the origin to the far corner")
	params := flag.Bool("params", false, "print configuration and counters when done")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Parse()

	if !*verbose {
		defer monitoring.Quiet()()
	}

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(simNames(), ", "))
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatalf("configure %s: %v", cfg.Sim, err)
	}
	gen, ok := sim.(*growth.Generator)
	if !ok {
		log.Fatalf("sim %q is not a maze generator", cfg.Sim)
	}

	if err := grow(gen, *maxTicks, *watch, *tps); err != nil {
		log.Fatal(err)
	}

	grid := gen.Grid()
	if err := maze.Verify(grid); err != nil {
		log.Fatalf("maze failed verification: %v", err)
	}
	if !*watch {
		if err := render.WriteLayers(os.Stdout, grid); err != nil {
			log.Fatal(err)
		}
	}

	if *solve {
		path, err := nav.Build(grid).Path(grid.Origin(), nav.FarCorner(grid.Dim()))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nSolution (%d moves):\n", len(path)-1)
		if err := render.WritePath(os.Stdout, path); err != nil {
			log.Fatal(err)
		}
	}

	if *params {
		fmt.Println()
		for _, line := range ui.Lines(gen.Parameters()) {
			fmt.Println(line)
		}
	}
}

func grow(gen *growth.Generator, maxTicks int, watch bool, tps int) error {
	if !watch {
		_, err := gen.Run(maxTicks)
		return err
	}

	clock := core.NewFixedStep(tps)
	for !gen.Done() {
		if maxTicks > 0 && gen.Stats().Ticks >= maxTicks {
			return fmt.Errorf("%w (%d)", growth.ErrTickLimit, maxTicks)
		}
		clock.Wait()
		gen.Step()
		fmt.Printf("tick %d\n", gen.Stats().Ticks)
		if err := render.WriteLayers(os.Stdout, gen.Grid()); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

func simNames() []string {
	var names []string
	for name := range core.Sims() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
