//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"hashlife/pkg/lifesim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a small name/generation-count/size/alive-count readout
// (plus the Life's ExtraInfo, when it has one) in the corner of the viewer
// window.
type Overlay struct {
	scale int
	lines []string
}

// NewOverlay constructs an overlay scaled consistently with the main view.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{scale: scale}
}

// Update refreshes the overlay's text from the current simulation state.
func (o *Overlay) Update(life lifesim.Life, generation int64) {
	lines := []string{
		fmt.Sprintf("%s  gen %d", life.Name(), generation),
		fmt.Sprintf("size %d  alive %d", life.Size(), life.AliveCount()),
	}
	if extra, ok := life.(lifesim.ExtraInfoer); ok {
		lines = append(lines, extra.ExtraInfo())
	}
	o.lines = lines
}

// Draw paints the overlay text onto the top-left of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	col := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	for i, line := range o.lines {
		text.Draw(screen, line, face, 6, 16+i*14, col)
	}
}
