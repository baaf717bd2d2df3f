package model

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		if errors.Cause(err) != target {
			t.Fatalf("panic cause = %v, expected %v", errors.Cause(err), target)
		}
	}()
	fn()
}

func TestNeighborCandidatesWrapAround(t *testing.T) {
	for _, n := range []int{3, 4, 7} {
		g := NewCubeGrid(n, true)
		g.ForEachCell(func(c *Cell) {
			p := c.Position()
			if got := g.NeighborCandidates(p.X, p.Y, p.Z); got != 26 {
				t.Fatalf("size %d cell %s has %d candidates, expected 26", n, p, got)
			}
		})
	}
}

func TestNeighborCandidatesBounded(t *testing.T) {
	g := NewCubeGrid(5, false)

	tests := []struct {
		name    string
		x, y, z int
		want    int
	}{
		{"corner", 0, 0, 0, 7},
		{"far corner", 4, 4, 4, 7},
		{"edge", 0, 0, 2, 11},
		{"face interior", 0, 2, 2, 17},
		{"interior", 2, 2, 2, 26},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.NeighborCandidates(tc.x, tc.y, tc.z); got != tc.want {
				t.Fatalf("candidates at (%d,%d,%d) = %d, expected %d", tc.x, tc.y, tc.z, got, tc.want)
			}
		})
	}
}

func TestNeighborCountCornerWrapsEveryAxis(t *testing.T) {
	g := NewCubeGrid(4, true)
	g.Set(3, 3, 3, true)

	if got := g.NeighborCount(0, 0, 0); got != 1 {
		t.Fatalf("corner sees %d live neighbors through the triple wrap, expected 1", got)
	}

	g.SetWrapAround(false)
	if got := g.NeighborCount(0, 0, 0); got != 0 {
		t.Fatalf("corner sees %d live neighbors without wraparound, expected 0", got)
	}
}

func TestNeighborCountExcludesCenter(t *testing.T) {
	g := NewCubeGrid(3, false)
	g.Set(1, 1, 1, true)
	if got := g.NeighborCount(1, 1, 1); got != 0 {
		t.Fatalf("center counted itself: got %d", got)
	}

	for x := range 3 {
		for y := range 3 {
			for z := range 3 {
				g.Set(x, y, z, true)
			}
		}
	}
	if got := g.NeighborCount(1, 1, 1); got != 26 {
		t.Fatalf("full grid center count = %d, expected 26", got)
	}
}

func TestSingleCellGridHasNoNeighbors(t *testing.T) {
	for _, wrap := range []bool{true, false} {
		g := NewCubeGrid(1, wrap)
		g.Set(0, 0, 0, true)
		if got := g.NeighborCount(0, 0, 0); got != 0 {
			t.Fatalf("wrap=%v: single cell counted %d neighbors", wrap, got)
		}
		if got := g.NeighborCandidates(0, 0, 0); got != 0 {
			t.Fatalf("wrap=%v: single cell has %d candidates", wrap, got)
		}
	}
}

func TestTwoCubeWrapCountsEachCellOnce(t *testing.T) {
	g := NewCubeGrid(2, true)
	for x := range 2 {
		for y := range 2 {
			for z := range 2 {
				g.Set(x, y, z, true)
			}
		}
	}
	if got := g.NeighborCount(0, 0, 0); got != 7 {
		t.Fatalf("2x2x2 full grid count = %d, expected 7", got)
	}
}

func TestNonCubicGrid(t *testing.T) {
	g := NewGrid(4, 3, 5, false)
	if g.Len() != 60 {
		t.Fatalf("Len() = %d, expected 60", g.Len())
	}
	g.Set(3, 2, 4, true)
	if !g.Cell(3, 2, 4).Visible() {
		t.Fatal("cell at far corner should be visible after Set")
	}
	if got := g.NeighborCount(2, 1, 3); got != 1 {
		t.Fatalf("neighbor count = %d, expected 1", got)
	}
}

func TestForEachCellVisitsEveryCellOnce(t *testing.T) {
	g := NewGrid(3, 4, 5, true)
	seen := make(map[Position]int)
	g.ForEachCell(func(c *Cell) { seen[c.Position()]++ })

	if len(seen) != g.Len() {
		t.Fatalf("visited %d distinct cells, expected %d", len(seen), g.Len())
	}
	for p, n := range seen {
		if n != 1 {
			t.Fatalf("cell %s visited %d times", p, n)
		}
	}

	count := 0
	for range g.All() {
		count++
	}
	if count != g.Len() {
		t.Fatalf("All() yielded %d cells, expected %d", count, g.Len())
	}
}

func TestOutOfRangePanics(t *testing.T) {
	g := NewCubeGrid(3, true)
	expectPanic(t, ErrOutOfRange, func() { g.NeighborCount(3, 0, 0) })
	expectPanic(t, ErrOutOfRange, func() { g.Get(0, -1, 0) })
	expectPanic(t, ErrOutOfRange, func() { g.Set(0, 0, 9, true) })
	expectPanic(t, ErrBadGridSize, func() { NewGrid(0, 1, 1, false) })
}

func TestRandomize(t *testing.T) {
	g := NewCubeGrid(10, true)

	g.Randomize(0, rand.New(rand.NewPCG(1, 0)))
	if got := g.CountLivingCells(); got != 0 {
		t.Fatalf("0%% start left %d live cells", got)
	}

	g.Randomize(100, rand.New(rand.NewPCG(1, 0)))
	if got := g.CountLivingCells(); got != g.Len() {
		t.Fatalf("100%% start left %d live cells, expected %d", got, g.Len())
	}

	g.Randomize(30, rand.New(rand.NewPCG(7, 0)))
	first := GridHash(g)
	alive := g.CountLivingCells()
	if alive < 200 || alive > 400 {
		t.Fatalf("30%% start produced %d of 1000 live cells", alive)
	}
	g.ForEachCell(func(c *Cell) {
		if c.NextState() != Unset {
			t.Fatalf("cell %s next state = %s after randomize", c.Position(), c.NextState())
		}
	})

	g.Randomize(30, rand.New(rand.NewPCG(7, 0)))
	if GridHash(g) != first {
		t.Fatal("Randomize with identical seed is not deterministic")
	}

	expectPanic(t, ErrPercentage, func() { g.Randomize(101, rand.New(rand.NewPCG(1, 0))) })
}
