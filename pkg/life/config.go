package life

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
)

var (
	// ErrInvalidSize reports a grid with a non-positive dimension.
	ErrInvalidSize = errors.New("grid width and height must be positive")
	// ErrInvalidRate reports a non-positive updates-per-second rate.
	ErrInvalidRate = errors.New("updates per second must be positive")
	// ErrInvalidWorkers reports a negative worker count.
	ErrInvalidWorkers = errors.New("worker count must not be negative")
)

// Config holds the engine settings fixed at construction.
type Config struct {
	Width  int
	Height int

	// UpdatesPerSecond is the target generation rate used by MaybeStep.
	UpdatesPerSecond int

	// Seed is used for the initial board when SeedSet is true. Otherwise a
	// non-deterministic seed is drawn.
	Seed    int64
	SeedSet bool

	// Workers bounds the number of row bands computed in parallel. Zero
	// selects runtime.GOMAXPROCS(0).
	Workers int
}

// GridFor derives grid dimensions from a target resolution and the number of
// pixels per cell.
func GridFor(resW, resH, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return resW / scale, resH / scale
}

// DefaultConfig returns a 1920x1080 display at scale 2 updated 24 times a
// second.
func DefaultConfig() Config {
	w, h := GridFor(1920, 1080, 2)
	return Config{Width: w, Height: h, UpdatesPerSecond: 24}
}

// WithSeed returns a copy of c using a fixed seed.
func (c Config) WithSeed(seed int64) Config {
	c.Seed = seed
	c.SeedSet = true
	return c
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.UpdatesPerSecond <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRate, c.UpdatesPerSecond)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["ups"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.UpdatesPerSecond = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c = c.WithSeed(parsed)
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}
