package hashnode

import (
	"testing"

	"github.com/go-quicktest/qt"

	"hashlife/pkg/lifesim"
)

func signatureOf(n *Node) string {
	var coords []lifesim.Coord
	Walk(n, 0, 0, func(row, col int64) {
		coords = append(coords, lifesim.Coord{Row: row, Col: col})
	})
	return lifesim.Signature(coords)
}

func blinkerGrid() [][]bool {
	return [][]bool{
		{false, false, false, false, false},
		{false, false, true, false, false},
		{false, false, true, false, false},
		{false, false, true, false, false},
		{false, false, false, false, false},
	}
}

func TestSimpleStepBlinkerOscillates(t *testing.T) {
	c := NewCache()
	n := FromGrid(c, blinkerGrid(), false)

	vertical := signatureOf(n)

	stepped := c.SimpleStep(c.ZeroPad(n))
	horizontal := signatureOf(stepped)
	qt.Assert(t, qt.IsTrue(horizontal != vertical))

	steppedTwice := c.SimpleStep(c.ZeroPad(stepped))
	qt.Assert(t, qt.Equals(signatureOf(steppedTwice), vertical))
}

func TestTorusPadTilesNodeAgainstItself(t *testing.T) {
	c := NewCache()
	n := FromGrid(c, blinkerGrid(), false)
	torus := c.TorusPad(n)
	rolled := c.Quad(n.SE(), n.SW(), n.NE(), n.NW(), false)

	qt.Assert(t, qt.Equals(torus.Level(), n.Level()+1))
	qt.Assert(t, qt.Equals(torus.NW(), rolled))
	qt.Assert(t, qt.Equals(torus.NE(), rolled))
	qt.Assert(t, qt.Equals(torus.SW(), rolled))
	qt.Assert(t, qt.Equals(torus.SE(), rolled))
}

func TestZeroPruneShrinksEmptyBorder(t *testing.T) {
	c := NewCache()
	n := FromGrid(c, blinkerGrid(), false)
	padded := c.ZeroPad(n)
	qt.Assert(t, qt.Equals(padded.Level(), n.Level()+1))

	pruned := c.ZeroPrune(padded)
	qt.Assert(t, qt.Equals(pruned.Level(), n.Level()))
	qt.Assert(t, qt.Equals(signatureOf(pruned), signatureOf(n)))
}

func TestZeroPruneLeavesActiveBorderAlone(t *testing.T) {
	c := NewCache()
	alive := c.Cell(true)
	dead := c.Cell(false)
	// A level-1 node with a live NW cell can't be halved any further by
	// ZeroPrune's level >= 2 floor, and a level-2 node with live content in
	// every quadrant's outer ring must be returned unchanged.
	n := c.Quad(
		c.Quad(alive, dead, dead, dead, false),
		c.Quad(dead, alive, dead, dead, false),
		c.Quad(dead, dead, alive, dead, false),
		c.Quad(dead, dead, dead, alive, false),
		false,
	)
	qt.Assert(t, qt.Equals(c.ZeroPrune(n), n))
}

func TestWarpStepMatchesRepeatedSimpleStep(t *testing.T) {
	grid := [][]bool{
		{false, false, false, false, false, false, false, false},
		{false, false, false, true, false, false, false, false},
		{false, false, false, false, true, false, false, false},
		{false, true, true, true, false, false, false, false},
		{false, false, false, false, false, false, false, false},
		{false, false, false, false, false, false, false, false},
		{false, false, false, false, false, false, false, false},
		{false, false, false, false, false, false, false, false},
	}

	warpCache := NewCache()
	warpBase := FromGrid(warpCache, grid, true)
	warpPadded := warpCache.ZeroPad(warpBase)
	warpResult := warpCache.WarpStep(warpPadded)
	steps := int64(1) << uint(warpPadded.Level()-2)

	simpleCache := NewCache()
	simpleNode := FromGrid(simpleCache, grid, false)
	for i := int64(0); i < steps; i++ {
		simpleNode = simpleCache.SimpleStep(simpleCache.ZeroPad(simpleNode))
	}

	qt.Assert(t, qt.Equals(signatureOf(warpResult), signatureOf(simpleNode)))
}
