package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridpath/internal/grid"
	"github.com/vovakirdan/gridpath/internal/search"
)

func sampleBoard() *grid.Board {
	b := grid.NewBoard(2, 3)
	b.Set(grid.At(0, 1), grid.Obstacle)
	b.Set(grid.At(1, 0), grid.Path)
	b.Set(grid.At(1, 1), grid.Closed)
	return b
}

func TestPlainASCII(t *testing.T) {
	opts := Options{Glyphs: ASCIIGlyphs()}

	expected := strings.Join([]string{
		". # . ",
		"* + . ",
	}, "\n") + "\n"
	if got := Plain(sampleBoard(), opts); got != expected {
		t.Errorf("Plain mismatch:\nexpected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestPlainEndpoints(t *testing.T) {
	opts := Options{Glyphs: ASCIIGlyphs()}.WithEndpoints(grid.At(0, 0), grid.At(1, 2))

	expected := "S # . \n* + G \n"
	if got := Plain(sampleBoard(), opts); got != expected {
		t.Errorf("Plain mismatch:\nexpected:\n%q\ngot:\n%q", expected, got)
	}
}

func TestPlainDefaultGlyphs(t *testing.T) {
	got := Plain(sampleBoard(), Options{Glyphs: DefaultGlyphs()})
	if !strings.Contains(got, "⛰️") {
		t.Error("expected obstacle glyph")
	}
	if !strings.Contains(got, "🚗") {
		t.Error("expected path glyph")
	}
	if strings.Count(got, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", got)
	}
}

func TestStyledContainsGlyphs(t *testing.T) {
	opts := Options{Glyphs: ASCIIGlyphs()}.WithEndpoints(grid.At(0, 0), grid.At(1, 2))
	got := Styled(sampleBoard(), DefaultTheme(), opts)

	for _, glyph := range []string{"S", "#", "*", "+", "G"} {
		if !strings.Contains(got, glyph) {
			t.Errorf("expected styled output to contain %q", glyph)
		}
	}
	if strings.Count(got, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", got)
	}
}

func TestGlyphSet(t *testing.T) {
	g, err := GlyphSet("ascii")
	if err != nil || g != ASCIIGlyphs() {
		t.Errorf("GlyphSet(ascii) = %v, %v", g, err)
	}
	g, err = GlyphSet("")
	if err != nil || g != DefaultGlyphs() {
		t.Errorf("GlyphSet(\"\") = %v, %v", g, err)
	}
	if _, err := GlyphSet("braille"); err == nil {
		t.Error("expected error for unknown glyph set")
	}
}

func TestGlyphsMerge(t *testing.T) {
	g := ASCIIGlyphs().Merge(Glyphs{Path: "o "})
	if g.Path != "o " || g.Obstacle != "# " {
		t.Errorf("unexpected merge result: %+v", g)
	}
	if g.CellString(grid.Path) != "o " || g.CellString(grid.Empty) != ". " {
		t.Errorf("unexpected CellString results")
	}
}

func TestPlainUsesGlyphOverrides(t *testing.T) {
	opts := Options{Glyphs: ASCIIGlyphs().Merge(Glyphs{Closed: "x ", Obstacle: "@ "})}

	expected := ". @ . \n* x . \n"
	if got := Plain(sampleBoard(), opts); got != expected {
		t.Errorf("Plain mismatch:\nexpected:\n%q\ngot:\n%q", expected, got)
	}
}

func TestSummary(t *testing.T) {
	res, err := search.Search(grid.NewBoard(1, 3), grid.At(0, 0), grid.At(0, 2))
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if got := Summary(res); got != "Path found: 2 steps, 3 cells marked, 3 expanded" {
		t.Errorf("unexpected summary: %q", got)
	}

	failed := search.Result{Outcome: search.Failed, Expanded: 4}
	if got := Summary(failed); got != "No path found (expanded 4)" {
		t.Errorf("unexpected summary: %q", got)
	}
}
