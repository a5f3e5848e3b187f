package core

import "time"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract frontends drive once per frame tick.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	MaybeStep(now time.Time) bool
	RenderIfDirty() ([]byte, bool)
}
