package search

import (
	"math"

	"github.com/vovakirdan/gridpath/internal/grid"
)

// Manhattan returns |r2-r1| + |c2-c1|, saturating at math.MaxInt.
// It never overestimates for 4-directional unit-cost movement.
func Manhattan(r1, c1, r2, c2 int) int {
	dr, dc := dist(r1, r2), dist(c1, c2)
	if dr > math.MaxInt || dc > math.MaxInt-dr {
		return math.MaxInt
	}
	return int(dr + dc)
}

// Estimate returns the Manhattan distance between two coordinates.
func Estimate(from, to grid.Coord) int {
	return Manhattan(from.Row, from.Col, to.Row, to.Col)
}

// dist returns |a-b| without overflowing.
func dist(a, b int) uint {
	if a > b {
		return uint(a) - uint(b)
	}
	return uint(b) - uint(a)
}
