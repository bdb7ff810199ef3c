package lifesim

import "time"

// Validation is the outcome of a Validate call. It is always a plain value,
// never an error — a signature mismatch is an expected, reportable event,
// not a failure of the Validator itself.
type Validation struct {
	// Ok is true iff every synchronized-generation comparison agreed.
	Ok bool
	// Generation is the highest synchronized virtual generation reached —
	// on mismatch, the generation at which the signatures first disagreed.
	Generation int64
	// SigA and SigB are the two signatures compared at Generation.
	SigA, SigB string
}

// Validate advances a and b in lock-step by virtual generation count —
// stepping whichever instance has the smaller counter, since GenerationStep
// may differ between them (Warp mode advances Size()/2 generations per call,
// every other mode advances exactly 1) — comparing signatures whenever the
// two counters coincide. It stops once both the wall-clock budget and the
// minGenerations goal are satisfied at a synchronized point, or as soon as a
// synchronized comparison disagrees.
//
// A step already in progress is never interrupted: budget is checked only
// between whole Next calls, at synchronized points, matching spec's
// per-step cancellation granularity.
func Validate(a, b Life, budget time.Duration, minGenerations int64) Validation {
	sigA, sigB := a.Signature(), b.Signature()
	if sigA != sigB {
		return Validation{Ok: false, Generation: 0, SigA: sigA, SigB: sigB}
	}

	genA, genB := int64(0), int64(0)
	start := time.Now()

	for {
		if genA == genB {
			if time.Since(start) >= budget && genA >= minGenerations {
				return Validation{Ok: true, Generation: genA, SigA: sigA, SigB: sigB}
			}
		}

		if genA <= genB {
			step := a.GenerationStep()
			a = a.Next()
			genA += step
		} else {
			step := b.GenerationStep()
			b = b.Next()
			genB += step
		}

		if genA == genB {
			sigA, sigB = a.Signature(), b.Signature()
			if sigA != sigB {
				return Validation{Ok: false, Generation: genA, SigA: sigA, SigB: sigB}
			}
		}
	}
}
