// Package gridlife is the flat-array Conway's Life oracle the quadtree
// modes in pkg/sims/nodelife are validated against: a direct,
// unoptimized toroidal evaluator with no interning and no memoization.
package gridlife

import (
	"strconv"
	"strings"

	"hashlife/internal/core"
	rngcore "hashlife/pkg/core"
	"hashlife/pkg/lifesim"
)

// Life is a toroidal Conway's Game of Life universe stored as a flat
// 0/1 buffer, satisfying lifesim.Life.
type Life struct {
	side int
	cur  []uint8
	nxt  []uint8
}

// New returns a side x side toroidal universe, initially all dead.
func New(side int) *Life {
	cells := make([]uint8, side*side)
	return &Life{side: side, cur: cells, nxt: make([]uint8, len(cells))}
}

// FromGrid returns a toroidal universe with grid's side length, seeded with
// grid's live cells. It panics if grid is not square.
func FromGrid(grid [][]bool) *Life {
	side := len(grid)
	for _, row := range grid {
		if len(row) != side {
			panic("gridlife: FromGrid requires a square grid")
		}
	}
	l := New(side)
	for y, row := range grid {
		for x, alive := range row {
			if alive {
				l.cur[y*side+x] = 1
			}
		}
	}
	return l
}

// Reset randomizes the board using the provided seed (core.NewRNG +
// FillBinary).
func (l *Life) Reset(seed int64) {
	rng := rngcore.NewRNG(seed).Source()
	rngcore.FillBinary(rng, l.cur)
}

// Name identifies the implementation.
func (l *Life) Name() string { return "gridlife" }

// Size returns the universe's side length.
func (l *Life) Size() int64 { return int64(l.side) }

// GenerationStep is always 1: gridlife has no hyper-speed mode.
func (l *Life) GenerationStep() int64 { return 1 }

// Next advances the simulation by one generation, toroidally.
func (l *Life) Next() lifesim.Life {
	side := l.side
	nxt := make([]uint8, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + side) % side
					ny := (y + dy + side) % side
					neighbors += int(l.cur[ny*side+nx])
				}
			}
			idx := y*side + x
			alive := l.cur[idx] == 1
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = 1
			}
		}
	}
	return &Life{side: side, cur: nxt, nxt: make([]uint8, len(nxt))}
}

// ExtractGrid renders the current buffer as a dense row-major grid.
func (l *Life) ExtractGrid() [][]bool {
	grid := make([][]bool, l.side)
	for y := 0; y < l.side; y++ {
		grid[y] = make([]bool, l.side)
		for x := 0; x < l.side; x++ {
			grid[y][x] = l.cur[y*l.side+x] == 1
		}
	}
	return grid
}

// AliveCoords returns every live cell's (row, col).
func (l *Life) AliveCoords() []lifesim.Coord {
	var coords []lifesim.Coord
	for y := 0; y < l.side; y++ {
		for x := 0; x < l.side; x++ {
			if l.cur[y*l.side+x] == 1 {
				coords = append(coords, lifesim.Coord{Row: int64(y), Col: int64(x)})
			}
		}
	}
	return coords
}

// Signature returns the translation-invariant canonical signature of the
// current configuration.
func (l *Life) Signature() string {
	return lifesim.Signature(l.AliveCoords())
}

// AliveCount returns the number of live cells.
func (l *Life) AliveCount() int64 {
	var n int64
	for _, v := range l.cur {
		n += int64(v)
	}
	return n
}

// ExtraInfo reports the raw buffer size, satisfying lifesim.ExtraInfoer.
func (l *Life) ExtraInfo() string {
	var b strings.Builder
	b.WriteString("buffer=")
	b.WriteString(strconv.Itoa(len(l.cur)))
	b.WriteString(" cells")
	return b.String()
}

func init() {
	core.Register("grid", func(grid [][]bool, _ int) lifesim.Life { return FromGrid(grid) })
}
