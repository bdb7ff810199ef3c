package app

import "flag"

// Config represents the command-line parameters shared by cmd/hashlife and
// cmd/hashlife-view.
type Config struct {
	Sim         string
	Pattern     string
	Size        int
	Seed        int64
	Generations int
	Validate    bool
	BenchMillis int
	WarpLevel   int

	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "node:open",
		Pattern:     "rpentomino",
		Size:        32,
		Seed:        42,
		Generations: 100,
		WarpLevel:   6,
		Scale:       6,
		TPS:         30,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "Life implementation to run (see internal/core.Sims)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern (blinker, glider, rpentomino, random)")
	fs.IntVar(&c.Size, "size", c.Size, "seed grid side length")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to run before reporting")
	fs.BoolVar(&c.Validate, "validate", c.Validate, "cross-check every generation against the gridlife oracle")
	fs.IntVar(&c.BenchMillis, "bench", c.BenchMillis, "if > 0, run internal/bench.Measure for this many milliseconds instead of -generations")
	fs.IntVar(&c.WarpLevel, "warp-level", c.WarpLevel, "minimum quadtree level to pad up to in node:warp mode (ignored by every other -sim)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (cmd/hashlife-view only)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (cmd/hashlife-view only)")
}
