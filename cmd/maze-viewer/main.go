//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cellmaze/internal/app"
	"cellmaze/internal/maze"
	"cellmaze/internal/sims/growth"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindView(flag.CommandLine)
	flag.Parse()

	gen, err := growth.New(maze.FromMap(cfg.SimConfig()))
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(gen, cfg.Scale, gen.Config().Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("cellmaze - " + gen.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
