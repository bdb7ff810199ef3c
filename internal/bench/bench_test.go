package bench

import (
	"testing"

	"hashlife/pkg/sims/gridlife"
)

func TestMeasureCountsGenerationsAndSteps(t *testing.T) {
	life := gridlife.FromGrid([][]bool{
		{false, true, false},
		{false, true, false},
		{false, true, false},
	})

	tick := int64(0)
	fakeNow := func() int64 {
		tick += 10
		return tick
	}

	result := Measure(life, 35, fakeNow)
	if result.Steps == 0 {
		t.Fatal("expected at least one Next call within the budget")
	}
	if result.Generations != result.Steps {
		t.Fatalf("gridlife advances 1 generation per step, got %d generations over %d steps", result.Generations, result.Steps)
	}
	if result.Name != "gridlife" {
		t.Fatalf("unexpected name %q", result.Name)
	}
}

func TestMeasureReturnsImmediatelyOnZeroBudget(t *testing.T) {
	life := gridlife.FromGrid([][]bool{{true}})
	tick := int64(100)
	fakeNow := func() int64 { return tick }

	result := Measure(life, 0, fakeNow)
	if result.Steps != 0 {
		t.Fatalf("expected no steps with a zero budget, got %d", result.Steps)
	}
}
