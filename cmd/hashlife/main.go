// Command hashlife is the headless CLI driver: it builds a named pattern,
// runs it for a number of generations (or a benchmark budget) under a
// selected Life implementation, and reports the result — optionally
// cross-checked against the gridlife oracle at every generation.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"hashlife/internal/app"
	"hashlife/internal/bench"
	"hashlife/internal/core"
	"hashlife/internal/patterns"
	"hashlife/pkg/lifesim"
	"hashlife/pkg/sims/gridlife"

	_ "hashlife/pkg/sims/nodelife"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (see -sim; registered: %v)", cfg.Sim, names(core.Sims()))
	}

	grid, ok := patterns.Load(cfg.Pattern, cfg.Size, cfg.Seed)
	if !ok {
		log.Fatalf("unknown pattern %q (want one of %v)", cfg.Pattern, patterns.Names)
	}

	life := factory(grid, cfg.WarpLevel)

	if cfg.BenchMillis > 0 {
		runBench(life, cfg)
		return
	}

	if cfg.Validate {
		runValidated(life, grid, cfg)
		return
	}

	run(life, cfg)
}

func run(life lifesim.Life, cfg *app.Config) {
	var generation int64
	progress := core.NewFixedStep(2)
	for generation < int64(cfg.Generations) {
		step := life.GenerationStep()
		life = life.Next()
		generation += step
		if progress.ShouldStep() {
			fmt.Printf("... generation %d/%d\n", generation, cfg.Generations)
		}
	}
	report(life, generation)
}

func runValidated(life lifesim.Life, grid [][]bool, cfg *app.Config) {
	oracle := gridlife.FromGrid(grid)
	result := lifesim.Validate(life, oracle, 0, int64(cfg.Generations))
	if !result.Ok {
		log.Fatalf("validation failed at generation %d: %q vs %q", result.Generation, result.SigA, result.SigB)
	}
	fmt.Printf("validated through generation %d: signatures agree\n", result.Generation)
}

func runBench(life lifesim.Life, cfg *app.Config) {
	budget := time.Duration(cfg.BenchMillis) * time.Millisecond
	result := bench.Measure(life, budget.Nanoseconds(), func() int64 { return time.Now().UnixNano() })
	fmt.Printf("%s: %d generations over %d steps in %s (%.1f gen/s), ending size %d, alive %d\n",
		result.Name, result.Generations, result.Steps, time.Duration(result.NanosElapsed),
		result.GenerationsPerSecond(), result.EndingSize, result.FinalAliveCnt)
}

func report(life lifesim.Life, generation int64) {
	fmt.Printf("%s after generation %d: size=%d alive=%d signature=%s\n",
		life.Name(), generation, life.Size(), life.AliveCount(), life.Signature())
	if extra, ok := life.(lifesim.ExtraInfoer); ok {
		fmt.Println(extra.ExtraInfo())
	}
}

func names(sims map[string]core.Factory) []string {
	out := make([]string, 0, len(sims))
	for name := range sims {
		out = append(out, name)
	}
	return out
}
