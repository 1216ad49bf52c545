package grid

import (
	"errors"
	"fmt"
)

// ErrMalformedBoard is returned for empty or non-rectangular input.
var ErrMalformedBoard = errors.New("malformed board")

// MaxCells is the largest board, in cells, that loaders accept.
const MaxCells = 1 << 22

// CheckSize reports whether a rows x cols board is non-empty and within
// MaxCells.
func CheckSize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrMalformedBoard, rows, cols)
	}
	if rows > MaxCells/cols {
		return fmt.Errorf("%w: size %dx%d exceeds %d cells", ErrMalformedBoard, rows, cols, MaxCells)
	}
	return nil
}

// Board is a rectangular grid of cell states.
// Cells are stored in row-major order: index = row*cols + col.
type Board struct {
	rows  int
	cols  int
	cells []State
}

// NewBoard creates a board with every cell Empty.
func NewBoard(rows, cols int) *Board {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]State, rows*cols),
	}
}

// FromRows builds a board from a matrix of states.
// All rows must be non-empty and of equal length.
func FromRows(rows [][]State) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedBoard)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrMalformedBoard)
	}
	b := NewBoard(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, r, len(row), cols)
		}
		copy(b.cells[r*cols:(r+1)*cols], row)
	}
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Validate checks that the board has at least one cell.
func (b *Board) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil board", ErrMalformedBoard)
	}
	if b.rows == 0 || b.cols == 0 || len(b.cells) != b.rows*b.cols {
		return fmt.Errorf("%w: %dx%d", ErrMalformedBoard, b.rows, b.cols)
	}
	return nil
}

func (b *Board) index(c Coord) int {
	return c.Row*b.cols + c.Col
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// Get returns the state at the given coordinate.
// Out-of-bounds coordinates read as Obstacle.
func (b *Board) Get(c Coord) State {
	if !b.InBounds(c) {
		return Obstacle
	}
	return b.cells[b.index(c)]
}

// Set sets the state at the given coordinate. Out-of-bounds writes are ignored.
func (b *Board) Set(c Coord, s State) {
	if b.InBounds(c) {
		b.cells[b.index(c)] = s
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]State, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, s := range b.cells {
		if s != other.cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells in the given state.
func (b *Board) Count(s State) int {
	n := 0
	for _, cell := range b.cells {
		if cell == s {
			n++
		}
	}
	return n
}

// Coords returns every coordinate in the given state, ordered by row then column.
func (b *Board) Coords(s State) []Coord {
	var coords []Coord
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r*b.cols+c] == s {
				coords = append(coords, At(r, c))
			}
		}
	}
	return coords
}

// Matrix returns the board as a fresh slice of rows.
func (b *Board) Matrix() [][]State {
	out := make([][]State, b.rows)
	for r := range out {
		row := make([]State, b.cols)
		copy(row, b.cells[r*b.cols:(r+1)*b.cols])
		out[r] = row
	}
	return out
}
