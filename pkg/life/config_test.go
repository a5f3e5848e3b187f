package life

import "testing"

func TestGridFor(t *testing.T) {
	w, h := GridFor(1920, 1080, 2)
	if w != 960 || h != 540 {
		t.Fatalf("GridFor(1920,1080,2)=%dx%d, want 960x540", w, h)
	}
	w, h = GridFor(100, 50, 0)
	if w != 100 || h != 50 {
		t.Fatalf("GridFor with scale 0=%dx%d, want 100x50", w, h)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.SeedSet {
		t.Fatal("default config should use a random seed")
	}
	if cfg.UpdatesPerSecond != 24 {
		t.Fatalf("UpdatesPerSecond=%d, want 24", cfg.UpdatesPerSecond)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":       "64",
		"h":       "48",
		"ups":     "30",
		"seed":    "0",
		"workers": "3",
		"bogus":   "1",
	})
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Fatalf("size=%dx%d, want 64x48", cfg.Width, cfg.Height)
	}
	if cfg.UpdatesPerSecond != 30 {
		t.Fatalf("ups=%d, want 30", cfg.UpdatesPerSecond)
	}
	if !cfg.SeedSet || cfg.Seed != 0 {
		t.Fatalf("seed=%d set=%v, want 0 set", cfg.Seed, cfg.SeedSet)
	}
	if cfg.Workers != 3 {
		t.Fatalf("workers=%d, want 3", cfg.Workers)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{"w": "-3", "h": "x", "ups": "0", "seed": "abc", "workers": "-1"})
	if cfg != def {
		t.Fatalf("invalid overrides applied: %+v", cfg)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map should yield defaults")
	}
}
