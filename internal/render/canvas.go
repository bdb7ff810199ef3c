package render

// Canvas is a dense w x h binary pixel buffer that internal/viz's projected
// torus points are plotted onto before GridPainter uploads them to the
// screen. Keeping the projection and the ebiten upload separate is what
// lets this file (and fillBinaryRGBA in pixels.go) stay free of the
// ebiten build tag, unlike painter.go.
type Canvas struct {
	W, H  int
	cells []uint8
}

// NewCanvas allocates a cleared w x h canvas.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Canvas{W: w, H: h, cells: make([]uint8, w*h)}
}

// Clear resets every pixel to off.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = 0
	}
}

// Plot marks the pixel at (x, y) as on. Out-of-bounds coordinates (a
// torus point that projected off-screen) are silently dropped.
func (c *Canvas) Plot(x, y int) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	c.cells[y*c.W+x] = 1
}

// PlotSquare marks every pixel within radius pixels of (x, y), so a single
// projected torus point renders as a visible dot rather than a single lit
// pixel.
func (c *Canvas) PlotSquare(x, y, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			c.Plot(x+dx, y+dy)
		}
	}
}

// Cells exposes the backing 0/1 buffer, the shape fillBinaryRGBA expects.
func (c *Canvas) Cells() []uint8 { return c.cells }
