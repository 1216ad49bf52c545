package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridpath/internal/grid"
	"github.com/vovakirdan/gridpath/internal/search"
)

// Options controls board rendering.
type Options struct {
	Glyphs Glyphs
	Start  *grid.Coord // drawn with Glyphs.Start when set
	Goal   *grid.Coord // drawn with Glyphs.Goal when set
}

// WithEndpoints returns a copy of opts marking start and goal.
func (o Options) WithEndpoints(start, goal grid.Coord) Options {
	o.Start = &start
	o.Goal = &goal
	return o
}

// kind is what a single cell is drawn as.
type kind uint8

const (
	kindEmpty kind = iota
	kindObstacle
	kindClosed
	kindPath
	kindStart
	kindGoal
)

func cellKind(b *grid.Board, c grid.Coord, opts Options) kind {
	if opts.Start != nil && *opts.Start == c {
		return kindStart
	}
	if opts.Goal != nil && *opts.Goal == c {
		return kindGoal
	}
	switch b.Get(c) {
	case grid.Obstacle:
		return kindObstacle
	case grid.Closed:
		return kindClosed
	case grid.Path:
		return kindPath
	default:
		return kindEmpty
	}
}

// glyph returns the text for the cell at c. Endpoint markers win over
// the cell state.
func glyph(b *grid.Board, c grid.Coord, opts Options) string {
	switch cellKind(b, c, opts) {
	case kindStart:
		return opts.Glyphs.Start
	case kindGoal:
		return opts.Glyphs.Goal
	default:
		return opts.Glyphs.CellString(b.Get(c))
	}
}

// Plain renders the board one glyph per cell, one line per row.
func Plain(b *grid.Board, opts Options) string {
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			sb.WriteString(glyph(b, grid.At(r, c), opts))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Styled renders the board like Plain with each glyph coloured by theme.
// Adjacent cells of the same kind share one styled run to keep escape
// sequences short.
func Styled(b *grid.Board, theme Theme, opts Options) string {
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		c := 0
		for c < b.Cols() {
			k := cellKind(b, grid.At(r, c), opts)

			var run strings.Builder
			for c < b.Cols() && cellKind(b, grid.At(r, c), opts) == k {
				run.WriteString(glyph(b, grid.At(r, c), opts))
				c++
			}
			sb.WriteString(theme.style(k).Render(run.String()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Summary returns a one-line description of a search result.
func Summary(res search.Result) string {
	if !res.Found() {
		return fmt.Sprintf("No path found (expanded %d)", res.Expanded)
	}
	return fmt.Sprintf("Path found: %d steps, %d cells marked, %d expanded",
		len(res.Route)-1, res.Board.Count(grid.Path), res.Expanded)
}

// Theme contains the colours used by Styled and the replay viewer.
type Theme struct {
	Empty    lipgloss.Style
	Obstacle lipgloss.Style
	Closed   lipgloss.Style
	Path     lipgloss.Style
	Start    lipgloss.Style
	Goal     lipgloss.Style

	Title  lipgloss.Style
	Status lipgloss.Style
	Failed lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		Obstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("136")), // Earth
		Closed:   lipgloss.NewStyle().Foreground(lipgloss.Color("67")),  // Steel blue
		Path:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Start:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Goal:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),

		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Failed: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

func (t Theme) style(k kind) lipgloss.Style {
	switch k {
	case kindObstacle:
		return t.Obstacle
	case kindClosed:
		return t.Closed
	case kindPath:
		return t.Path
	case kindStart:
		return t.Start
	case kindGoal:
		return t.Goal
	default:
		return t.Empty
	}
}
