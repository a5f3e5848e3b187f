package app

import (
	"flag"
	"strconv"

	"lifegrid/pkg/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ResWidth   int
	ResHeight  int
	Scale      int
	UPS        int
	TPS        int
	Workers    int
	Fullscreen bool
	Overlay    bool

	Seed    int64
	SeedSet bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{ResWidth: 1920, ResHeight: 1080, Scale: 2, UPS: 24, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.ResWidth, "res-w", c.ResWidth, "target resolution width in pixels")
	fs.IntVar(&c.ResHeight, "res-h", c.ResHeight, "target resolution height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.UPS, "ups", c.UPS, "generations per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame loop ticks per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel row workers (0 = GOMAXPROCS)")
	fs.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "start in fullscreen mode")
	fs.BoolVar(&c.Overlay, "overlay", c.Overlay, "show the stats overlay on start")
	fs.Func("seed", "seed for the initial board (random when unset)", func(v string) error {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		c.Seed = parsed
		c.SeedSet = true
		return nil
	})
}

// Life derives the engine configuration.
func (c *Config) Life() life.Config {
	w, h := life.GridFor(c.ResWidth, c.ResHeight, c.Scale)
	cfg := life.Config{
		Width:            w,
		Height:           h,
		UpdatesPerSecond: c.UPS,
		Workers:          c.Workers,
	}
	if c.SeedSet {
		cfg = cfg.WithSeed(c.Seed)
	}
	return cfg
}

// PixelScale returns the scale clamped to at least 1.
func (c *Config) PixelScale() int {
	if c.Scale <= 0 {
		return 1
	}
	return c.Scale
}
