//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	engine, err := life.New(cfg.Life())
	if err != nil {
		log.Fatalf("life: %v", err)
	}
	size := engine.Size()
	scale := cfg.PixelScale()
	log.Printf("life: %dx%d grid, seed %d, step every %s", size.W, size.H, engine.Seed(), engine.Interval())

	game := app.New(engine, scale, engine.Seed(), cfg.Overlay)

	ebiten.SetWindowTitle("lifegrid: " + engine.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*scale, size.H*scale)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
