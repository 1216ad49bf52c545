// Package search implements a best-first grid search guided by Manhattan
// distance.
//
// The search follows A* selection order with two deliberate simplifications:
// a cell is closed as soon as it is queued, so it is never reconsidered through
// a cheaper later path, and every node taken from the frontier is marked Path
// on the returned board, not only the final route. Ties on f = g + h are broken
// in favour of the most recently queued node, and neighbors are queued in
// grid.Directions() order. Together these make every run reproducible.
package search

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridpath/internal/grid"
)

// ErrInvalidCoordinate is returned when start or goal lies outside the board
// or on an obstacle.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Outcome is the terminal state of a search.
type Outcome uint8

const (
	Failed Outcome = iota
	Succeeded
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "Succeeded"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Step records one iteration of the search loop.
type Step struct {
	Current grid.Coord   // node taken from the frontier
	G       int          // cost from start
	H       int          // estimate to goal
	Opened  []grid.Coord // neighbors queued and closed by this expansion
}

// Result contains the outcome of a search.
type Result struct {
	Outcome Outcome

	// Board is the marked copy of the input board. Nil when the search failed.
	Board *grid.Board

	// Route is the parent chain from start to goal. Nil when the search failed.
	Route []grid.Coord

	// Trace lists every iteration in order.
	Trace []Step

	// Expanded is the number of nodes taken from the frontier.
	Expanded int
}

// Found reports whether the goal was reached.
func (r Result) Found() bool {
	return r.Outcome == Succeeded
}

// Search runs the search from start to goal over a copy of board.
// The caller's board is never modified. Structural problems with the input
// are returned as errors before any work is done; an unreachable goal is a
// Failed result with a nil error.
func Search(board *grid.Board, start, goal grid.Coord) (Result, error) {
	if err := board.Validate(); err != nil {
		return Result{}, err
	}
	if err := checkEndpoint(board, "start", start); err != nil {
		return Result{}, err
	}
	if err := checkEndpoint(board, "goal", goal); err != nil {
		return Result{}, err
	}

	work := board.Clone()
	parents := make(map[grid.Coord]grid.Coord)

	var open frontier
	open.add(start, 0, Estimate(start, goal))
	work.Set(start, grid.Closed)

	var trace []Step
	for !open.empty() {
		current := open.pop()
		work.Set(current.coord, grid.Path)
		step := Step{Current: current.coord, G: current.g, H: current.h}

		if current.coord == goal {
			trace = append(trace, step)
			return Result{
				Outcome:  Succeeded,
				Board:    work,
				Route:    route(parents, start, goal),
				Trace:    trace,
				Expanded: len(trace),
			}, nil
		}

		for _, d := range grid.Directions() {
			next := current.coord.Step(d)
			if !work.InBounds(next) || !work.Get(next).Walkable() {
				continue
			}
			open.add(next, current.g+1, Estimate(next, goal))
			work.Set(next, grid.Closed)
			parents[next] = current.coord
			step.Opened = append(step.Opened, next)
		}
		trace = append(trace, step)
	}

	return Result{
		Outcome:  Failed,
		Trace:    trace,
		Expanded: len(trace),
	}, nil
}

func checkEndpoint(board *grid.Board, name string, c grid.Coord) error {
	if !board.InBounds(c) {
		return fmt.Errorf("%w: %s %v outside %dx%d board", ErrInvalidCoordinate, name, c, board.Rows(), board.Cols())
	}
	if board.Get(c) == grid.Obstacle {
		return fmt.Errorf("%w: %s %v is an obstacle", ErrInvalidCoordinate, name, c)
	}
	return nil
}

// route walks parent pointers back from goal and returns the chain in
// start-to-goal order.
func route(parents map[grid.Coord]grid.Coord, start, goal grid.Coord) []grid.Coord {
	path := []grid.Coord{goal}
	current := goal
	for current != start {
		prev, ok := parents[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
