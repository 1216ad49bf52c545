// Package render turns boards into text for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gridpath/internal/grid"
)

// Glyphs maps cell states to the text drawn for them.
type Glyphs struct {
	Empty    string
	Obstacle string
	Closed   string
	Path     string
	Start    string
	Goal     string
}

// DefaultGlyphs returns the emoji glyph set. Closed cells draw like empty ones.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Empty:    "0   ",
		Obstacle: "⛰️   ",
		Closed:   "0   ",
		Path:     "🚗   ",
		Start:    "🚦   ",
		Goal:     "🏁   ",
	}
}

// ASCIIGlyphs returns a single-width glyph set for plain terminals.
func ASCIIGlyphs() Glyphs {
	return Glyphs{
		Empty:    ". ",
		Obstacle: "# ",
		Closed:   "+ ",
		Path:     "* ",
		Start:    "S ",
		Goal:     "G ",
	}
}

// GlyphSet returns a named glyph set: "emoji" or "ascii".
func GlyphSet(name string) (Glyphs, error) {
	switch strings.ToLower(name) {
	case "", "emoji":
		return DefaultGlyphs(), nil
	case "ascii":
		return ASCIIGlyphs(), nil
	default:
		return Glyphs{}, fmt.Errorf("render: unknown glyph set %q", name)
	}
}

// Merge returns g with every non-empty field of override applied.
func (g Glyphs) Merge(override Glyphs) Glyphs {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&g.Empty, override.Empty)
	set(&g.Obstacle, override.Obstacle)
	set(&g.Closed, override.Closed)
	set(&g.Path, override.Path)
	set(&g.Start, override.Start)
	set(&g.Goal, override.Goal)
	return g
}

// CellString returns the glyph for a cell state.
func (g Glyphs) CellString(s grid.State) string {
	switch s {
	case grid.Obstacle:
		return g.Obstacle
	case grid.Closed:
		return g.Closed
	case grid.Path:
		return g.Path
	default:
		return g.Empty
	}
}
