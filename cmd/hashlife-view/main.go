//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"hashlife/internal/app"
	"hashlife/internal/core"
	"hashlife/internal/patterns"

	_ "hashlife/pkg/sims/gridlife"
	_ "hashlife/pkg/sims/nodelife"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	grid, ok := patterns.Load(cfg.Pattern, cfg.Size, cfg.Seed)
	if !ok {
		log.Fatalf("unknown pattern %q", cfg.Pattern)
	}

	life := factory(grid, cfg.WarpLevel)

	screenW, screenH := 640, 480
	game := app.New(life, screenW, screenH, cfg.Scale)

	ebiten.SetWindowTitle("hashlife-view — " + life.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(screenW, screenH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
