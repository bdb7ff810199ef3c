package hashnode

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestCellInterning(t *testing.T) {
	c := NewCache()
	a := c.Cell(true)
	b := c.Cell(true)
	qt.Assert(t, qt.Equals(a, b))
	qt.Assert(t, qt.IsTrue(a != c.Cell(false)))
}

func TestQuadInterning(t *testing.T) {
	c := NewCache()
	dead := c.Cell(false)
	alive := c.Cell(true)

	a := c.Quad(dead, alive, dead, dead, false)
	b := c.Quad(dead, alive, dead, dead, false)
	qt.Assert(t, qt.Equals(a, b))
	qt.Assert(t, qt.Equals(a.Level(), 1))

	warped := c.Quad(dead, alive, dead, dead, true)
	qt.Assert(t, qt.IsTrue(a != warped))
	qt.Assert(t, qt.IsFalse(a.IsWarp()))
	qt.Assert(t, qt.IsTrue(warped.IsWarp()))
}

func TestQuadLevelMismatchPanics(t *testing.T) {
	c := NewCache()
	leaf := c.Cell(true)
	interior := c.Quad(leaf, leaf, leaf, leaf, false)

	defer func() {
		if recover() == nil {
			t.Fatal("expected Quad to panic on mismatched child levels")
		}
	}()
	c.Quad(leaf, interior, leaf, leaf, false)
}

func TestZeroLadderIsEmptyAndShared(t *testing.T) {
	c := NewCache()
	for level := 0; level <= 4; level++ {
		z := c.Zero(level, false)
		qt.Assert(t, qt.Equals(z.Level(), level))
		qt.Assert(t, qt.IsTrue(z.IsEmpty()))
	}
	qt.Assert(t, qt.Equals(c.Zero(3, false), c.Zero(3, false)))
}

func TestZeroLadderMatchesWarpMode(t *testing.T) {
	c := NewCache()
	plain := c.Zero(3, false)
	warp := c.Zero(3, true)
	qt.Assert(t, qt.IsFalse(plain.IsWarp()))
	qt.Assert(t, qt.IsTrue(warp.IsWarp()))
	qt.Assert(t, qt.IsTrue(plain.IsEmpty()))
	qt.Assert(t, qt.IsTrue(warp.IsEmpty()))
}

func TestClearDropsInterning(t *testing.T) {
	c := NewCache()
	a := c.Cell(true)
	before := c.Size()
	qt.Assert(t, qt.IsTrue(before > 0))

	c.Clear()
	qt.Assert(t, qt.Equals(c.Size(), 0))

	b := c.Cell(true)
	qt.Assert(t, qt.IsTrue(a != b))
}
