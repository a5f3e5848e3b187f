package life

import (
	"image/color"
	"time"

	"lifegrid/pkg/core"
)

// Grids with fewer cells than this are stepped on the calling goroutine.
const parallelThreshold = 64 * 64

var (
	aliveColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	deadColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Engine implements Conway's Game of Life on a fixed toroidal grid.
//
// cur is the visible generation. nxt is scratch space owned by Step and is
// never exposed. Both grids and the pixel buffer are allocated once.
type Engine struct {
	cfg  Config
	seed int64

	cur *core.Grid
	nxt *core.Grid
	buf []byte

	timer      *core.StepTimer
	dirty      bool
	generation uint64
	workers    int
}

// New validates cfg and returns an engine whose board is randomized with one
// fair coin flip per cell.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if !cfg.SeedSet {
		seed = core.RandomSeed()
	}
	e := &Engine{
		cfg:     cfg,
		cur:     core.NewGrid(cfg.Width, cfg.Height),
		nxt:     core.NewGrid(cfg.Width, cfg.Height),
		buf:     make([]byte, core.BytesPerCell*cfg.Width*cfg.Height),
		timer:   core.NewStepTimer(cfg.UpdatesPerSecond, time.Now()),
		workers: cfg.workers(),
	}
	e.Reset(seed)
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cur.Size() }

// Cells exposes the current generation. It is replaced by the scratch grid on
// every step, so callers must not retain it across steps.
func (e *Engine) Cells() *core.Grid { return e.cur }

// Generation returns the number of steps since construction or the last Reset.
func (e *Engine) Generation() uint64 { return e.generation }

// Population returns the number of live cells in the current generation.
func (e *Engine) Population() int { return e.cur.Count() }

// Seed returns the seed used for the most recent randomization.
func (e *Engine) Seed() int64 { return e.seed }

// Interval returns the minimum time between generations.
func (e *Engine) Interval() time.Duration { return e.timer.Interval() }

// LastStep returns the time the last generation was computed, or the
// construction time if none has been.
func (e *Engine) LastStep() time.Time { return e.timer.Last() }

// Dirty reports whether the current generation has not been rendered yet.
func (e *Engine) Dirty() bool { return e.dirty }

// Reset randomizes the board using the provided seed and restarts the step
// timer, so the new board stays visible for a full interval.
func (e *Engine) Reset(seed int64) {
	e.timer.Mark(time.Now())
	e.seed = seed
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, e.cur.Cells())
	e.nxt.Clear()
	e.generation = 0
	e.dirty = true
}

// MaybeStep advances one generation if at least Interval has passed since the
// last one. It never blocks and reports whether a step ran.
func (e *Engine) MaybeStep(now time.Time) bool {
	if !e.timer.Due(now) {
		return false
	}
	e.Step()
	e.timer.Mark(now)
	return true
}

// Step advances the simulation by one generation regardless of the timer.
func (e *Engine) Step() {
	cur, nxt := e.cur.Cells(), e.nxt.Cells()
	w, h := e.cur.W, e.cur.H

	workers := e.workers
	if w*h < parallelThreshold {
		workers = 1
	}
	core.ForEachBand(h, workers, func(y0, y1 int) {
		stepRows(cur, nxt, w, h, y0, y1)
	})

	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
	e.dirty = true
}

// RenderIfDirty packs the current generation into RGBA pixels (white alive,
// black dead, row-major) and clears the dirty flag. It returns false when
// nothing changed since the last render. The returned slice is reused by the
// next call.
func (e *Engine) RenderIfDirty() ([]byte, bool) {
	if !e.dirty {
		return nil, false
	}
	core.FillBinaryRGBA(e.buf, e.cur.Cells(), aliveColor, deadColor)
	e.dirty = false
	return e.buf, true
}

// Parameters describes the fixed engine settings and live counters.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", int64(e.cur.W)),
				core.IntParam("h", "Height", int64(e.cur.H)),
				core.IntParam("seed", "Seed", e.seed),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				core.IntParam("ups", "Updates/s", int64(e.cfg.UpdatesPerSecond)),
				core.DurationParam("interval", "Interval", e.timer.Interval()),
				core.IntParam("workers", "Workers", int64(e.workers)),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("gen", "Generation", int64(e.generation)),
				core.IntParam("pop", "Population", int64(e.Population())),
			},
		},
	}}
}

// stepRows writes rows [y0, y1) of nxt from cur. It reads nothing else from
// nxt, so disjoint row ranges can run concurrently.
func stepRows(cur, nxt []uint8, w, h, y0, y1 int) {
	for y := y0; y < y1; y++ {
		above := ((y + h - 1) % h) * w
		row := y * w
		below := ((y + 1) % h) * w
		for x := 0; x < w; x++ {
			left := (x + w - 1) % w
			right := (x + 1) % w
			n := cur[above+left] + cur[above+x] + cur[above+right] +
				cur[row+left] + cur[row+right] +
				cur[below+left] + cur[below+x] + cur[below+right]
			var next uint8
			if n == 3 || (n == 2 && cur[row+x] != 0) {
				next = 1
			}
			nxt[row+x] = next
		}
	}
}
