package search

import (
	"math"
	"testing"

	"github.com/vovakirdan/gridpath/internal/grid"
)

func TestManhattan(t *testing.T) {
	testCases := []struct {
		r1, c1, r2, c2 int
		expected       int
	}{
		{0, 0, 0, 0, 0},
		{0, 0, 4, 5, 9},
		{4, 5, 0, 0, 9},
		{2, 2, 2, 7, 5},
		{-3, 1, 2, -1, 7},
		{0, 0, math.MinInt, 0, math.MaxInt},
		{math.MinInt, 0, math.MaxInt, 0, math.MaxInt},
		{math.MinInt, math.MinInt, math.MaxInt, math.MaxInt, math.MaxInt},
		{math.MinInt, 0, -1, 0, math.MaxInt},
		{0, 0, math.MaxInt - 1, 1, math.MaxInt},
		{0, 0, math.MaxInt - 2, 1, math.MaxInt - 1},
	}

	for _, tc := range testCases {
		got := Manhattan(tc.r1, tc.c1, tc.r2, tc.c2)
		if got != tc.expected {
			t.Errorf("Manhattan(%d,%d,%d,%d): expected %d, got %d",
				tc.r1, tc.c1, tc.r2, tc.c2, tc.expected, got)
		}
	}
}

func TestManhattanNeverNegative(t *testing.T) {
	extremes := []int{math.MinInt, math.MinInt + 1, -1, 0, 1, math.MaxInt - 1, math.MaxInt}
	for _, a := range extremes {
		for _, b := range extremes {
			if got := Manhattan(a, b, b, a); got < 0 {
				t.Errorf("Manhattan(%d,%d,%d,%d) = %d, want >= 0", a, b, b, a, got)
			}
		}
	}
}

func TestEstimateIsSymmetric(t *testing.T) {
	a, b := grid.At(1, 7), grid.At(6, 2)
	if Estimate(a, b) != Estimate(b, a) {
		t.Errorf("estimate should be symmetric: %d vs %d", Estimate(a, b), Estimate(b, a))
	}
}

func TestFrontierTieBreak(t *testing.T) {
	var fr frontier
	fr.add(grid.At(0, 0), 1, 3) // f=4
	fr.add(grid.At(0, 1), 2, 2) // f=4, newer
	fr.add(grid.At(0, 2), 0, 1) // f=1
	fr.add(grid.At(0, 3), 3, 1) // f=4, newest

	expected := []grid.Coord{grid.At(0, 2), grid.At(0, 3), grid.At(0, 1), grid.At(0, 0)}
	for i, want := range expected {
		if fr.empty() {
			t.Fatalf("frontier empty after %d pops", i)
		}
		if got := fr.pop().coord; got != want {
			t.Errorf("pop %d: expected %v, got %v", i, want, got)
		}
	}
	if !fr.empty() {
		t.Error("frontier should be empty")
	}
}
