// Package grid provides the board model for pathfinding: cell states,
// coordinates, the orthogonal direction table and the rectangular board.
// This package is UI-agnostic and deterministic.
package grid

// State is the state of a single board cell.
type State uint8

const (
	Empty State = iota
	Obstacle
	Closed // discovered by the search, no longer eligible
	Path   // popped and expanded by the search
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Obstacle:
		return "Obstacle"
	case Closed:
		return "Closed"
	case Path:
		return "Path"
	default:
		return "Unknown"
	}
}

// Walkable reports whether a search may still enter a cell in this state.
func (s State) Walkable() bool {
	return s == Empty
}

// Dir represents one of the four orthogonal moves.
type Dir uint8

const (
	DirUp Dir = iota
	DirLeft
	DirDown
	DirRight
)

var directions = [4]Dir{DirUp, DirLeft, DirDown, DirRight}

// Directions returns the expansion order used by the search.
// The order decides which of several equal-cost paths is found.
func Directions() [4]Dir {
	return directions
}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (row, col) offset for one step in this direction.
// Up decreases Row, Down increases Row.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirLeft:
		return 0, -1
	case DirDown:
		return 1, 0
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}
