package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridpath/internal/grid"
	"github.com/vovakirdan/gridpath/internal/render"
	"github.com/vovakirdan/gridpath/internal/search"
)

// Replay speed limits in steps per second.
const (
	minFPS = 1
	maxFPS = 120
)

// Replay is a finished search ready to be played back.
type Replay struct {
	Title  string
	Board  *grid.Board // board the search ran on, before any marking
	Start  grid.Coord
	Goal   grid.Coord
	Result search.Result
}

// ReplayOptions controls playback and drawing.
type ReplayOptions struct {
	FPS    int
	Loop   bool
	Theme  render.Theme
	Glyphs render.Glyphs
}

// Model is the Bubble Tea model that plays back a search trace.
type Model struct {
	replay   Replay
	opts     ReplayOptions
	board    *grid.Board // replay board with the first step trace steps applied
	step     int
	paused   bool
	fps      int
	keys     ReplayKeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a replay model positioned before the first step.
func NewModel(r Replay, opts ReplayOptions) Model {
	fps := opts.FPS
	if fps < minFPS {
		fps = minFPS
	}
	if fps > maxFPS {
		fps = maxFPS
	}

	m := Model{
		replay: r,
		opts:   opts,
		fps:    fps,
		keys:   DefaultReplayKeyMap(),
		help:   help.New(),
	}
	m.reset()
	return m
}

// reset rewinds to the initial state: only the start cell closed.
func (m *Model) reset() {
	m.board = m.replay.Board.Clone()
	m.board.Set(m.replay.Start, grid.Closed)
	m.step = 0
}

// advance applies the next trace step. Returns false when the trace is exhausted.
func (m *Model) advance() bool {
	if m.Done() {
		return false
	}
	s := m.replay.Result.Trace[m.step]
	for _, c := range s.Opened {
		m.board.Set(c, grid.Closed)
	}
	m.board.Set(s.Current, grid.Path)
	m.step++
	return true
}

// Done reports whether every trace step has been shown.
func (m Model) Done() bool {
	return m.step >= len(m.replay.Result.Trace)
}

// Step returns the number of trace steps applied.
func (m Model) Step() int { return m.step }

// Paused reports whether playback is paused.
func (m Model) Paused() bool { return m.paused }

// FPS returns the playback rate in steps per second.
func (m Model) FPS() int { return m.fps }

// Board returns the board as currently shown.
func (m Model) Board() *grid.Board { return m.board }

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool { return m.quitting }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Step):
		m.paused = true
		m.advance()
	case key.Matches(msg, m.keys.Restart):
		m.reset()
	case key.Matches(msg, m.keys.Faster):
		m.fps = min(m.fps*2, maxFPS)
	case key.Matches(msg, m.keys.Slower):
		m.fps = max(m.fps/2, minFPS)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleTick advances playback and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.fps)
	}
	if !m.advance() && m.opts.Loop {
		m.reset()
	}
	return m, tickCmd(m.fps)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	theme := m.opts.Theme
	var sb strings.Builder

	title := m.replay.Title
	if title == "" {
		title = "gridpath"
	}
	sb.WriteString(theme.Title.Render(fmt.Sprintf("%s  %v -> %v", title, m.replay.Start, m.replay.Goal)))
	sb.WriteString("\n\n")

	opts := render.Options{Glyphs: m.opts.Glyphs}.WithEndpoints(m.replay.Start, m.replay.Goal)
	sb.WriteString(render.Styled(m.board, theme, opts))
	sb.WriteString("\n")

	sb.WriteString(theme.Status.Render(m.statusLine()))
	sb.WriteString("\n")
	if m.Done() {
		if m.replay.Result.Found() {
			sb.WriteString(theme.Path.Render(render.Summary(m.replay.Result)))
		} else {
			sb.WriteString(theme.Failed.Render(render.Summary(m.replay.Result)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) statusLine() string {
	total := len(m.replay.Result.Trace)
	state := "playing"
	if m.paused {
		state = "paused"
	}
	if m.step == 0 {
		return fmt.Sprintf("step 0/%d  %d/s  %s", total, m.fps, state)
	}
	s := m.replay.Result.Trace[m.step-1]
	return fmt.Sprintf("step %d/%d  at %v  g=%d h=%d f=%d  %d/s  %s",
		m.step, total, s.Current, s.G, s.H, s.G+s.H, m.fps, state)
}

// Run starts the Bubble Tea program for a replay.
func Run(r Replay, opts ReplayOptions) error {
	p := tea.NewProgram(
		NewModel(r, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
