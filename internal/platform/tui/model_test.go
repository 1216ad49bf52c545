package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridpath/internal/grid"
	"github.com/vovakirdan/gridpath/internal/render"
	"github.com/vovakirdan/gridpath/internal/search"
)

func testReplay(t *testing.T, b *grid.Board, start, goal grid.Coord) Replay {
	t.Helper()
	res, err := search.Search(b, start, goal)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	return Replay{Title: "test", Board: b, Start: start, Goal: goal, Result: res}
}

func testOptions() ReplayOptions {
	return ReplayOptions{FPS: 10, Theme: render.DefaultTheme(), Glyphs: render.ASCIIGlyphs()}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestModelInitialState(t *testing.T) {
	r := testReplay(t, grid.NewBoard(5, 6), grid.At(0, 0), grid.At(4, 5))
	m := NewModel(r, testOptions())

	if m.Step() != 0 || m.Done() {
		t.Fatalf("expected fresh replay, got step %d done %v", m.Step(), m.Done())
	}
	if m.Board().Get(grid.At(0, 0)) != grid.Closed {
		t.Error("start cell should begin Closed")
	}
	if r.Board.Get(grid.At(0, 0)) != grid.Empty {
		t.Error("replay must not modify the source board")
	}
}

func TestModelPlaysToResultBoard(t *testing.T) {
	r := testReplay(t, grid.NewBoard(5, 6), grid.At(0, 0), grid.At(4, 5))
	m := NewModel(r, testOptions())

	for i := 0; i < len(r.Result.Trace)+3; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}

	if !m.Done() {
		t.Fatalf("expected replay to finish, at step %d", m.Step())
	}
	if !m.Board().Equal(r.Result.Board) {
		t.Errorf("replayed board differs from search result:\n%s\nvs\n%s",
			render.Plain(m.Board(), render.Options{Glyphs: render.ASCIIGlyphs()}),
			render.Plain(r.Result.Board, render.Options{Glyphs: render.ASCIIGlyphs()}))
	}
}

func TestModelLoop(t *testing.T) {
	r := testReplay(t, grid.NewBoard(1, 2), grid.At(0, 0), grid.At(0, 1))
	opts := testOptions()
	opts.Loop = true
	m := NewModel(r, opts)

	for i := 0; i < len(r.Result.Trace); i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	if !m.Done() {
		t.Fatal("expected replay to finish")
	}

	m = update(t, m, TickMsg(time.Now()))
	if m.Step() != 0 {
		t.Errorf("looping replay should rewind, at step %d", m.Step())
	}
}

func TestModelKeys(t *testing.T) {
	r := testReplay(t, grid.NewBoard(3, 3), grid.At(0, 0), grid.At(2, 2))
	m := NewModel(r, testOptions())

	m = update(t, m, keyRunes("p"))
	if !m.Paused() {
		t.Fatal("p should pause")
	}
	m = update(t, m, TickMsg(time.Now()))
	if m.Step() != 0 {
		t.Error("paused replay should not advance on tick")
	}

	m = update(t, m, keyRunes("n"))
	m = update(t, m, keyRunes("n"))
	if m.Step() != 2 {
		t.Errorf("expected 2 manual steps, got %d", m.Step())
	}

	m = update(t, m, keyRunes("+"))
	if m.FPS() != 20 {
		t.Errorf("expected 20 fps after +, got %d", m.FPS())
	}
	m = update(t, m, keyRunes("-"))
	m = update(t, m, keyRunes("-"))
	if m.FPS() != 5 {
		t.Errorf("expected 5 fps after two -, got %d", m.FPS())
	}

	m = update(t, m, keyRunes("r"))
	if m.Step() != 0 {
		t.Errorf("restart should rewind, at step %d", m.Step())
	}

	next, cmd := m.Update(keyRunes("q"))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelFPSClamped(t *testing.T) {
	r := testReplay(t, grid.NewBoard(1, 1), grid.At(0, 0), grid.At(0, 0))
	opts := testOptions()

	opts.FPS = 0
	if got := NewModel(r, opts).FPS(); got != minFPS {
		t.Errorf("expected fps clamped to %d, got %d", minFPS, got)
	}
	opts.FPS = 10_000
	if got := NewModel(r, opts).FPS(); got != maxFPS {
		t.Errorf("expected fps clamped to %d, got %d", maxFPS, got)
	}
}

func TestModelViewShowsOutcome(t *testing.T) {
	b := grid.NewBoard(3, 1)
	b.Set(grid.At(1, 0), grid.Obstacle)
	r := testReplay(t, b, grid.At(0, 0), grid.At(2, 0))
	m := NewModel(r, testOptions())

	if strings.Contains(m.View(), "No path found") {
		t.Error("outcome should not show before the replay finishes")
	}
	for !m.Done() {
		m = update(t, m, keyRunes("n"))
	}
	view := m.View()
	if !strings.Contains(view, "No path found") {
		t.Errorf("expected failure summary in view:\n%s", view)
	}
	if !strings.Contains(view, "step 1/1") {
		t.Errorf("expected step counter in view:\n%s", view)
	}
}
