// Package patterns supplies the named seed grids cmd/hashlife can select
// with -pattern: a well-known oscillator, spaceship and methuselah, plus a
// randomized soup built the same way pkg/sims/gridlife.Life.Reset seeds its
// board.
package patterns

import (
	"hashlife/internal/core"
	rngcore "hashlife/pkg/core"
)

// Names lists every pattern loadable by Load, in the order cmd/hashlife's
// -pattern flag usage string presents them.
var Names = []string{"blinker", "glider", "rpentomino", "random"}

// Blinker returns a period-2 oscillator centered on a size x size grid.
func Blinker(size int) [][]bool {
	g := core.NewByteGrid(size, size)
	cy, cx := size/2, size/2
	g.SetAlive(cx-1, cy)
	g.SetAlive(cx, cy)
	g.SetAlive(cx+1, cy)
	return g.Bools()
}

// Glider returns a single glider positioned near the top-left corner of a
// size x size grid, heading toward increasing row and column.
func Glider(size int) [][]bool {
	g := core.NewByteGrid(size, size)
	g.SetAlive(2, 1)
	g.SetAlive(3, 2)
	g.SetAlive(1, 3)
	g.SetAlive(2, 3)
	g.SetAlive(3, 3)
	return g.Bools()
}

// RPentomino returns the R-pentomino centered on a size x size grid, the
// classic long-lived methuselah used to validate Open mode's unbounded
// growth.
func RPentomino(size int) [][]bool {
	g := core.NewByteGrid(size, size)
	cy, cx := size/2, size/2
	g.SetAlive(cx, cy-1)
	g.SetAlive(cx+1, cy-1)
	g.SetAlive(cx-1, cy)
	g.SetAlive(cx, cy)
	g.SetAlive(cx, cy+1)
	return g.Bools()
}

// Random returns a size x size grid seeded with an independent coin flip
// per cell, using the same pkg/core NewRNG/FillBinary pair
// pkg/sims/gridlife.Life.Reset uses.
func Random(size int, seed int64) [][]bool {
	g := core.NewByteGrid(size, size)
	rng := rngcore.NewRNG(seed).Source()
	rngcore.FillBinary(rng, g.Cells())
	return g.Bools()
}

// Load builds the named pattern on a size x size grid, seeding "random"
// with seed. It reports ok=false for an unrecognized name.
func Load(name string, size int, seed int64) (grid [][]bool, ok bool) {
	switch name {
	case "blinker":
		return Blinker(size), true
	case "glider":
		return Glider(size), true
	case "rpentomino":
		return RPentomino(size), true
	case "random":
		return Random(size, seed), true
	default:
		return nil, false
	}
}
