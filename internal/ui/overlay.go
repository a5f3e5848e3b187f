//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

const (
	overlayPadding    = 6
	overlayLineHeight = 14
)

// Overlay draws a text panel with the simulation's parameters and live
// counters on top of the grid.
type Overlay struct {
	sim     core.Sim
	visible bool
	paused  func() bool

	panel      *ebiten.Image
	lastLines  int
	lastLength int
}

// NewOverlay constructs a new overlay instance. paused may be nil.
func NewOverlay(sim core.Sim, visible bool, paused func() bool) *Overlay {
	return &Overlay{sim: sim, visible: visible, paused: paused}
}

// Update toggles visibility on Tab.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	lines := o.lines()
	longest := 0
	for _, l := range lines {
		if len(l) > longest {
			longest = len(l)
		}
	}
	o.ensurePanel(len(lines), longest)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(overlayPadding, overlayPadding)
	screen.DrawImage(o.panel, op)

	face := basicfont.Face7x13
	for i, l := range lines {
		y := 2*overlayPadding + (i+1)*overlayLineHeight - 3
		text.Draw(screen, l, face, 2*overlayPadding, y, color.White)
	}
}

func (o *Overlay) lines() []string {
	var lines []string
	if provider, ok := o.sim.(parameterProvider); ok {
		for _, g := range provider.Parameters().Groups {
			parts := make([]string, 0, len(g.Params))
			for _, p := range g.Params {
				parts = append(parts, p.Label+" "+p.Value)
			}
			lines = append(lines, g.Name+": "+strings.Join(parts, "  "))
		}
	}
	status := fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if o.paused != nil && o.paused() {
		status += "  [paused]"
	}
	return append(lines, status)
}

func (o *Overlay) ensurePanel(lines, longest int) {
	if o.panel != nil && lines == o.lastLines && longest <= o.lastLength {
		return
	}
	w := longest*basicfont.Face7x13.Advance + 2*overlayPadding
	h := lines*overlayLineHeight + 2*overlayPadding
	o.panel = ebiten.NewImage(w, h)
	o.panel.Fill(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	o.lastLines = lines
	o.lastLength = longest
}
