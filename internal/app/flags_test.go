package app

import (
	"flag"
	"io"
	"testing"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestConfigDefaults(t *testing.T) {
	cfg := parse(t)
	lc := cfg.Life()
	if lc.Width != 960 || lc.Height != 540 {
		t.Fatalf("grid=%dx%d, want 960x540", lc.Width, lc.Height)
	}
	if lc.UpdatesPerSecond != 24 {
		t.Fatalf("ups=%d, want 24", lc.UpdatesPerSecond)
	}
	if lc.SeedSet {
		t.Fatal("seed should be unset by default")
	}
	if err := lc.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := parse(t,
		"-res-w", "640", "-res-h", "480", "-scale", "4",
		"-ups", "10", "-tps", "30", "-workers", "2",
		"-fullscreen", "-overlay", "-seed", "0",
	)
	lc := cfg.Life()
	if lc.Width != 160 || lc.Height != 120 {
		t.Fatalf("grid=%dx%d, want 160x120", lc.Width, lc.Height)
	}
	if lc.UpdatesPerSecond != 10 || cfg.TPS != 30 || lc.Workers != 2 {
		t.Fatalf("ups=%d tps=%d workers=%d", lc.UpdatesPerSecond, cfg.TPS, lc.Workers)
	}
	if !cfg.Fullscreen || !cfg.Overlay {
		t.Fatal("boolean flags not applied")
	}
	if !lc.SeedSet || lc.Seed != 0 {
		t.Fatalf("seed=%d set=%v, want 0 set", lc.Seed, lc.SeedSet)
	}
	if cfg.PixelScale() != 4 {
		t.Fatalf("PixelScale=%d, want 4", cfg.PixelScale())
	}
}

func TestConfigRejectsBadSeed(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "nope"}); err == nil {
		t.Fatal("expected error for non-numeric seed")
	}
}
