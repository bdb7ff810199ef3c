// Package bench measures how fast a pkg/lifesim.Life implementation can
// advance, grounded in internal/core.FixedStep's tick-budget bookkeeping.
package bench

import "hashlife/pkg/lifesim"

// Result summarizes a Measure run.
type Result struct {
	Name          string
	StartingSize  int64
	EndingSize    int64
	Generations   int64
	Steps         int64
	NanosElapsed  int64
	FinalAliveCnt int64
}

// GenerationsPerSecond reports the throughput Measure observed, or 0 if no
// time elapsed.
func (r Result) GenerationsPerSecond() float64 {
	if r.NanosElapsed <= 0 {
		return 0
	}
	return float64(r.Generations) * 1e9 / float64(r.NanosElapsed)
}

// Clock abstracts the passage of time so Measure can be driven by a
// deterministic fake in tests instead of time.Now.
type Clock func() int64

// Measure repeatedly calls life.Next() until now() - start reaches
// budgetNanos, then reports how many generations and Next calls it took.
// life is never mutated; Measure follows the chain of returned values the
// same way pkg/lifesim.Validate does.
func Measure(life lifesim.Life, budgetNanos int64, now Clock) Result {
	start := now()
	var steps, generations int64
	cur := life
	for now()-start < budgetNanos {
		step := cur.GenerationStep()
		cur = cur.Next()
		steps++
		generations += step
	}
	elapsed := now() - start

	return Result{
		Name:          life.Name(),
		StartingSize:  life.Size(),
		EndingSize:    cur.Size(),
		Generations:   generations,
		Steps:         steps,
		NanosElapsed:  elapsed,
		FinalAliveCnt: cur.AliveCount(),
	}
}
