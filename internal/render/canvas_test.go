package render

import (
	"image/color"
	"testing"
)

func TestPlotMarksInBoundsPixels(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Plot(1, 2)
	c.Plot(-1, 0)
	c.Plot(4, 4)

	cells := c.Cells()
	if cells[2*4+1] != 1 {
		t.Fatal("expected (1,2) to be plotted")
	}
	count := 0
	for _, v := range cells {
		count += int(v)
	}
	if count != 1 {
		t.Fatalf("expected out-of-bounds plots to be dropped, got %d pixels set", count)
	}
}

func TestPlotSquareCoversRadius(t *testing.T) {
	c := NewCanvas(10, 10)
	c.PlotSquare(5, 5, 1)
	want := [][2]int{{4, 4}, {5, 4}, {6, 4}, {4, 5}, {5, 5}, {6, 5}, {4, 6}, {5, 6}, {6, 6}}
	cells := c.Cells()
	for _, p := range want {
		if cells[p[1]*10+p[0]] != 1 {
			t.Fatalf("expected (%d,%d) to be lit by PlotSquare", p[0], p[1])
		}
	}
}

func TestClearResetsCanvas(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Plot(0, 0)
	c.Clear()
	for _, v := range c.Cells() {
		if v != 0 {
			t.Fatal("expected Clear to zero every pixel")
		}
	}
}

func TestFillBinaryRGBAWritesOnAndOffColors(t *testing.T) {
	buf := make([]byte, 8)
	cells := []uint8{1, 0}
	fillBinaryRGBA(buf, cells, color.White, color.Black)

	if buf[0] != 255 || buf[3] != 255 {
		t.Fatalf("expected the first pixel to be opaque white, got %v", buf[0:4])
	}
	if buf[4] != 0 || buf[7] != 255 {
		t.Fatalf("expected the second pixel to be opaque black, got %v", buf[4:8])
	}
}
