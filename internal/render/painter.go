//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a Canvas's binary pixel buffer into an ebiten.Image
// each frame and draws it scaled onto the destination image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a canvas of size w x h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads canvas's cells into the painter's image and draws it onto
// dst, scaled by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, canvas *Canvas, on, off color.Color, scale int) {
	if canvas.W != gp.w || canvas.H != gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, canvas.Cells(), on, off)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
