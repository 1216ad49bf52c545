// Package formats provides the board file parsers.
package formats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/gridpath/internal/grid"
)

// ParseText parses rows of comma-separated integers. 0 is an empty cell and
// any other integer is an obstacle. A trailing comma and blank lines are
// allowed.
func ParseText(r io.Reader) (*grid.Board, error) {
	var rows [][]grid.State

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		row, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d",
				grid.ErrMalformedBoard, lineNo, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	return grid.FromRows(rows)
}

// ParseLine parses a single row of a text board.
func ParseLine(line string) ([]grid.State, error) {
	tokens := strings.Split(line, ",")
	if last := len(tokens) - 1; strings.TrimSpace(tokens[last]) == "" {
		tokens = tokens[:last]
	}

	row := make([]grid.State, 0, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q is not an integer", grid.ErrMalformedBoard, i+1, tok)
		}
		if n == 0 {
			row = append(row, grid.Empty)
		} else {
			row = append(row, grid.Obstacle)
		}
	}
	return row, nil
}

// FormatText writes a board back in the text format. Only obstacles are
// preserved; every other state is written as 0.
func FormatText(b *grid.Board) string {
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if b.Get(grid.At(r, c)) == grid.Obstacle {
				sb.WriteString("1,")
			} else {
				sb.WriteString("0,")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
