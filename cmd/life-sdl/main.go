//go:build sdl

package main

import (
	"flag"
	"log"
	"time"

	"lifegrid/internal/app"
	"lifegrid/pkg/life"

	"github.com/veandco/go-sdl2/sdl"
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

	if err := run(engine, scale, cfg.Fullscreen); err != nil {
		log.Fatal(err)
	}
}

func run(engine *life.Engine, scale int, fullscreen bool) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	// Nearest-neighbour magnification keeps cells crisp.
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	size := engine.Size()
	flags := uint32(sdl.WINDOW_SHOWN)
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	window, err := sdl.CreateWindow("lifegrid: "+engine.Name(), sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(size.W*scale), int32(size.H*scale), flags)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	// ABGR8888 is R,G,B,A in memory on little-endian hosts.
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		int32(size.W), int32(size.H))
	if err != nil {
		return err
	}
	defer texture.Destroy()

	pitch := 4 * size.W
	paused := false
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE, sdl.K_q:
					return nil
				case sdl.K_SPACE:
					paused = !paused
				case sdl.K_r:
					engine.Reset(engine.Seed())
				}
			}
		}

		if !paused {
			engine.MaybeStep(time.Now())
		}
		pix, ok := engine.RenderIfDirty()
		if !ok {
			sdl.Delay(1)
			continue
		}
		if err := texture.Update(nil, pix, pitch); err != nil {
			return err
		}
		if err := renderer.Copy(texture, nil, nil); err != nil {
			return err
		}
		renderer.Present()
	}
}
