package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridpath/internal/grid"
)

// YAMLBoard represents the YAML structure for a board file.
//
// A board is either given as text rows:
//
//	rows:
//	  - "0,1,0"
//	  - "0,0,0"
//
// or as a size plus a list of obstacle cells.
type YAMLBoard struct {
	Name      string            `yaml:"name"`
	Size      *YAMLSize         `yaml:"size,omitempty"`
	Obstacles []YAMLCoord       `yaml:"obstacles,omitempty"`
	Rows      []string          `yaml:"rows,omitempty"`
	Start     *YAMLCoord        `yaml:"start,omitempty"`
	Goal      *YAMLCoord        `yaml:"goal,omitempty"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents board dimensions.
type YAMLSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// YAMLCoord represents a single cell in YAML format.
type YAMLCoord struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Parsed is a decoded board file ready for use.
type Parsed struct {
	Name     string
	Board    *grid.Board
	Start    *grid.Coord
	Goal     *grid.Coord
	Metadata map[string]string
}

// ParseYAML parses a YAML board file.
func ParseYAML(data []byte) (Parsed, error) {
	var yb YAMLBoard
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return Parsed{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	var (
		b   *grid.Board
		err error
	)
	switch {
	case len(yb.Rows) > 0:
		b, err = ParseText(strings.NewReader(strings.Join(yb.Rows, "\n")))
		if err != nil {
			return Parsed{}, err
		}
	case yb.Size != nil:
		if err := grid.CheckSize(yb.Size.Rows, yb.Size.Cols); err != nil {
			return Parsed{}, err
		}
		b = grid.NewBoard(yb.Size.Rows, yb.Size.Cols)
	default:
		return Parsed{}, fmt.Errorf("%w: neither rows nor size given", grid.ErrMalformedBoard)
	}

	for _, o := range yb.Obstacles {
		c := grid.At(o.Row, o.Col)
		if !b.InBounds(c) {
			return Parsed{}, fmt.Errorf("%w: obstacle %v outside %dx%d board", grid.ErrMalformedBoard, c, b.Rows(), b.Cols())
		}
		b.Set(c, grid.Obstacle)
	}

	return Parsed{
		Name:     yb.Name,
		Board:    b,
		Start:    yb.Start.coord(),
		Goal:     yb.Goal.coord(),
		Metadata: yb.Metadata,
	}, nil
}

func (c *YAMLCoord) coord() *grid.Coord {
	if c == nil {
		return nil
	}
	out := grid.At(c.Row, c.Col)
	return &out
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".board", ".txt", ".csv", ".yaml", ".yml"}
}
