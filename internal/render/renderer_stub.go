//go:build !ebiten

package render

// GridPainter is a no-op placeholder for headless builds.
type GridPainter struct{}

// NewGridPainter returns nil in the headless build.
func NewGridPainter(int, int) *GridPainter { return nil }

// Upload is a no-op in the headless build.
func (gp *GridPainter) Upload([]byte) {}

// Draw is a no-op in the headless build.
func (gp *GridPainter) Draw(any, int) {}
