// Package nodelife implements the four quadtree-backed Life boundary
// modes — Torus, Cropped, Open, and Warp — as thin compositions of
// pkg/hashnode's step algorithms and boundary transforms, each exposing
// pkg/lifesim.Life.
package nodelife

import (
	"fmt"

	"hashlife/internal/core"
	"hashlife/pkg/hashnode"
	"hashlife/pkg/lifesim"
)

// Mode selects how a Life instance's canvas behaves at its edges.
type Mode int

const (
	// Torus treats the canvas as wrapping around on itself: the cell past
	// the east edge is the cell at the west edge, and likewise for
	// north/south.
	Torus Mode = iota
	// Cropped treats everything outside the canvas as permanently dead;
	// activity that reaches the border is truncated.
	Cropped
	// Open grows the canvas to accommodate activity approaching the
	// border and shrinks it back down once the border is quiet again, so
	// a pattern can expand indefinitely.
	Open
	// Warp is Open's hyper-speed counterpart: each Next call advances
	// Size()/2 generations instead of one, at the cost of a fixed canvas:
	// the canvas never grows, and live cells that would leave it are
	// dropped.
	Warp
)

func (m Mode) String() string {
	switch m {
	case Torus:
		return "torus"
	case Cropped:
		return "cropped"
	case Open:
		return "open"
	case Warp:
		return "warp"
	default:
		return "unknown"
	}
}

// Life is a Conway's Game of Life universe backed by a hashnode.Cache.
// The zero value is not usable; construct one with Create.
type Life struct {
	mode  Mode
	cache *hashnode.Cache
	root  *hashnode.Node
}

// Create builds a Life in the given mode from an initial grid. grid must
// be square (Create panics otherwise), but its side need not be a power of
// two — pkg/hashnode.FromGrid pads it up to the smallest square
// power-of-two canvas that contains it.
//
// warpLevel only applies to Warp mode: once the grid is lifted into a
// node tree, it's ZeroPadded again and again until its level is at least
// warpLevel, so a pattern much smaller than the requested warp box still
// gets the step size (Size()/2 generations per Next) that box implies,
// instead of being limited to whatever level its own size happens to
// land on. It's ignored for every other mode.
func Create(grid [][]bool, mode Mode, warpLevel int) *Life {
	for _, row := range grid {
		if len(row) != len(grid) {
			panic("nodelife: Create requires a square grid")
		}
	}
	cache := hashnode.NewCache()
	root := hashnode.FromGrid(cache, grid, mode == Warp)
	if mode == Warp {
		for root.Level() < warpLevel {
			root = cache.ZeroPad(root)
		}
	}
	return &Life{mode: mode, cache: cache, root: root}
}

// Name identifies the mode, e.g. "node:torus".
func (l *Life) Name() string { return "node:" + l.mode.String() }

// Mode returns the boundary mode this instance was created with.
func (l *Life) Mode() Mode { return l.mode }

// Size returns the side length of the current canvas. Open's canvas grows
// and shrinks over time; the others stay fixed.
func (l *Life) Size() int64 { return int64(1) << uint(l.root.Level()) }

// GenerationStep is 1 for every mode except Warp, which advances Size()/2
// generations per Next call.
func (l *Life) GenerationStep() int64 {
	if l.mode == Warp {
		return l.Size() / 2
	}
	return 1
}

// Next advances the simulation by GenerationStep generations.
func (l *Life) Next() lifesim.Life {
	c := l.cache
	var next *hashnode.Node

	switch l.mode {
	case Torus:
		next = c.SimpleStep(c.TorusPad(l.root))
	case Cropped:
		next = c.SimpleStep(c.ZeroPad(l.root))
	case Open:
		padded := c.ZeroPad(c.ZeroPad(l.root))
		next = c.ZeroPrune(c.SimpleStep(padded))
	case Warp:
		next = c.WarpStep(c.ZeroPad(l.root))
	default:
		panic("nodelife: unknown mode")
	}

	return &Life{mode: l.mode, cache: c, root: next}
}

// ExtractGrid renders the current canvas into a dense row-major grid of
// side Size().
func (l *Life) ExtractGrid() [][]bool {
	side := int(l.Size())
	grid := make([][]bool, side)
	for i := range grid {
		grid[i] = make([]bool, side)
	}
	hashnode.Walk(l.root, 0, 0, func(row, col int64) {
		if int(row) < side && int(col) < side {
			grid[row][col] = true
		}
	})
	return grid
}

// AliveCoords returns every live cell's (row, col) within the current
// canvas, pruning empty subtrees rather than scanning the full area.
func (l *Life) AliveCoords() []lifesim.Coord {
	var coords []lifesim.Coord
	hashnode.Walk(l.root, 0, 0, func(row, col int64) {
		coords = append(coords, lifesim.Coord{Row: row, Col: col})
	})
	return coords
}

// Signature returns the translation-invariant canonical signature of the
// current configuration.
func (l *Life) Signature() string {
	return lifesim.Signature(l.AliveCoords())
}

// AliveCount returns the number of live cells.
func (l *Life) AliveCount() int64 { return hashnode.Population(l.root) }

// ExtraInfo reports the interning cache's size and the current root
// level, satisfying lifesim.ExtraInfoer.
func (l *Life) ExtraInfo() string {
	return fmt.Sprintf("cache=%d nodes level=%d", l.cache.Size(), l.root.Level())
}

func init() {
	core.Register("node:torus", func(grid [][]bool, warpLevel int) lifesim.Life { return Create(grid, Torus, warpLevel) })
	core.Register("node:cropped", func(grid [][]bool, warpLevel int) lifesim.Life { return Create(grid, Cropped, warpLevel) })
	core.Register("node:open", func(grid [][]bool, warpLevel int) lifesim.Life { return Create(grid, Open, warpLevel) })
	core.Register("node:warp", func(grid [][]bool, warpLevel int) lifesim.Life { return Create(grid, Warp, warpLevel) })
}
