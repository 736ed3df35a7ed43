//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"lifegrid/internal/app"
	"lifegrid/internal/life"
	"lifegrid/internal/pattern"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := pattern.Lookup(cfg.Pattern)
	if !ok {
		log.Fatalf("unknown pattern %q (available: %s)", cfg.Pattern, strings.Join(pattern.Names(), ", "))
	}

	board := life.Config{Rows: cfg.Rows, Cols: cfg.Cols, CellSize: cfg.CellSize, Wrap: cfg.Wrap}
	game, err := app.New(board, factory, cfg.Scale, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("lifegrid — " + cfg.Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Cols*cfg.Scale, cfg.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
