package gridlife

import "testing"

func TestBlinkerOscillation(t *testing.T) {
	life := New(5)
	life.cur[1*5+2] = 1
	life.cur[2*5+2] = 1
	life.cur[3*5+2] = 1

	next := life.Next()

	expect := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := next.ExtractGrid()[y][x]
			_, shouldBeAlive := expect[[2]int{y, x}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	again := next.Next()
	expect = map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := again.ExtractGrid()[y][x]
			_, shouldBeAlive := expect[[2]int{y, x}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestFromGridSeedsLiveCells(t *testing.T) {
	l := FromGrid([][]bool{
		{false, true},
		{true, false},
	})
	if l.AliveCount() != 2 {
		t.Fatalf("expected 2 live cells, got %d", l.AliveCount())
	}
}

func TestResetIsDeterministicForAGivenSeed(t *testing.T) {
	a := New(8)
	a.Reset(42)
	b := New(8)
	b.Reset(42)
	if a.Signature() != b.Signature() {
		t.Fatal("expected Reset with the same seed to produce the same configuration")
	}
}
