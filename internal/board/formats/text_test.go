package formats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridpath/internal/grid"
)

const courseBoard = `0,1,0,0,0,0,
0,1,0,0,0,0,
0,1,0,0,0,0,
0,1,0,0,0,0,
0,0,0,0,1,0,
`

func TestParseTextCourseBoard(t *testing.T) {
	b, err := ParseText(strings.NewReader(courseBoard))
	require.NoError(t, err)
	require.Equal(t, 5, b.Rows())
	require.Equal(t, 6, b.Cols())
	require.Equal(t, 5, b.Count(grid.Obstacle))
	require.Equal(t, grid.Obstacle, b.Get(grid.At(0, 1)))
	require.Equal(t, grid.Obstacle, b.Get(grid.At(4, 4)))
	require.Equal(t, grid.Empty, b.Get(grid.At(4, 1)))
}

func TestParseLine(t *testing.T) {
	testCases := []struct {
		line     string
		expected []grid.State
	}{
		{"0,1,0,", []grid.State{grid.Empty, grid.Obstacle, grid.Empty}},
		{"0,1,0", []grid.State{grid.Empty, grid.Obstacle, grid.Empty}},
		{" 0 , 2 ,0", []grid.State{grid.Empty, grid.Obstacle, grid.Empty}},
		{"1", []grid.State{grid.Obstacle}},
	}

	for _, tc := range testCases {
		row, err := ParseLine(tc.line)
		require.NoError(t, err, "line %q", tc.line)
		require.Equal(t, tc.expected, row, "line %q", tc.line)
	}
}

func TestParseTextErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"only blank lines", "\n\n  \n"},
		{"ragged rows", "0,0,0,\n0,0,\n"},
		{"bad token", "0,x,0,\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseText(strings.NewReader(tc.input))
			require.ErrorIs(t, err, grid.ErrMalformedBoard)
		})
	}
}

func TestParseTextSkipsBlankLines(t *testing.T) {
	b, err := ParseText(strings.NewReader("\n0,0,\n\n1,0,\n\n"))
	require.NoError(t, err)
	require.Equal(t, 2, b.Rows())
	require.Equal(t, grid.Obstacle, b.Get(grid.At(1, 0)))
}

func TestFormatTextRoundTrip(t *testing.T) {
	b, err := ParseText(strings.NewReader(courseBoard))
	require.NoError(t, err)
	require.Equal(t, courseBoard, FormatText(b))
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
name: corridor
size: {rows: 3, cols: 4}
obstacles:
  - {row: 1, col: 1}
  - {row: 1, col: 2}
start: {row: 0, col: 0}
goal: {row: 2, col: 3}
metadata:
  author: test
`)

	p, err := ParseYAML(data)
	require.NoError(t, err)
	require.Equal(t, "corridor", p.Name)
	require.Equal(t, 3, p.Board.Rows())
	require.Equal(t, 4, p.Board.Cols())
	require.Equal(t, 2, p.Board.Count(grid.Obstacle))
	require.NotNil(t, p.Start)
	require.Equal(t, grid.At(0, 0), *p.Start)
	require.NotNil(t, p.Goal)
	require.Equal(t, grid.At(2, 3), *p.Goal)
	require.Equal(t, "test", p.Metadata["author"])
}

func TestParseYAMLRows(t *testing.T) {
	data := []byte(`
rows:
  - "0,1,0,"
  - "0,0,0,"
obstacles:
  - {row: 1, col: 2}
`)

	p, err := ParseYAML(data)
	require.NoError(t, err)
	require.Nil(t, p.Start)
	require.Equal(t, 2, p.Board.Count(grid.Obstacle))
	require.Equal(t, grid.Obstacle, p.Board.Get(grid.At(1, 2)))
}

func TestParseYAMLErrors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"no board", "name: empty\n"},
		{"zero size", "size: {rows: 0, cols: 3}\n"},
		{"negative size", "size: {rows: 3, cols: -1}\n"},
		{"overflowing size", "size: {rows: 4611686018427387904, cols: 2}\n"},
		{"too many cells", "size: {rows: 4096, cols: 4096}\n"},
		{"obstacle outside", "size: {rows: 2, cols: 2}\nobstacles:\n  - {row: 5, col: 0}\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			require.ErrorIs(t, err, grid.ErrMalformedBoard)
		})
	}

	_, err := ParseYAML([]byte("size: [not, a, map"))
	require.Error(t, err)
}
