package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/gridpath/internal/storage"
)

// Run log browser layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show board list sidebar
	sidebarWidth       = 20  // Width of board list sidebar
	maxRuns            = 100 // Max runs to load per board
)

// RunSource is the part of the run log the browser reads.
type RunSource interface {
	Boards() ([]string, error)
	RunsForBoard(board string, limit int) ([]storage.Run, error)
}

// RunLogKeyMap defines the key bindings for the run log browser.
type RunLogKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunLogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunLogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextBoard, k.PrevBoard, k.Quit},
	}
}

// DefaultRunLogKeyMap returns default key bindings.
func DefaultRunLogKeyMap() RunLogKeyMap {
	return RunLogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev board"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunLogModel is the Bubble Tea model for browsing recorded solves.
type RunLogModel struct {
	source      RunSource
	boards      []string
	cursor      int // Currently selected board index
	runs        []storage.Run
	err         error
	table       table.Model
	help        help.Model
	keys        RunLogKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewRunLogModel creates a browser over source, starting at board when it
// has recorded runs.
func NewRunLogModel(source RunSource, board string, width, height int) RunLogModel {
	h := help.New()
	h.ShowAll = false

	m := RunLogModel{
		source:      source,
		keys:        DefaultRunLogKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()

	m.boards, m.err = source.Boards()
	for i, name := range m.boards {
		if name == board {
			m.cursor = i
		}
	}
	if len(m.boards) > 0 {
		m.loadRuns()
	}
	return m
}

func (m *RunLogModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Start->Goal", Width: 13},
		{Title: "Outcome", Width: 10},
		{Title: "Expanded", Width: 9},
		{Title: "Route", Width: 6},
		{Title: "Date", Width: 12},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *RunLogModel) loadRuns() {
	runs, err := m.source.RunsForBoard(m.boards[m.cursor], maxRuns)
	m.runs, m.err = runs, err
	m.updateTableRows()
}

func (m *RunLogModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		route := "-"
		if r.Found() {
			route = fmt.Sprintf("%d", r.RouteLen)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%v->%v", r.Start, r.Goal),
			r.Outcome,
			fmt.Sprintf("%d", r.Expanded),
			route,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the browser.
func (m RunLogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m RunLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextBoard):
			if len(m.boards) > 0 {
				m.cursor = (m.cursor + 1) % len(m.boards)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevBoard):
			if len(m.boards) > 0 {
				m.cursor--
				if m.cursor < 0 {
					m.cursor = len(m.boards) - 1
				}
				m.loadRuns()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m RunLogModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "RUN LOG"
	if board := m.Board(); board != "" {
		title = fmt.Sprintf("RUN LOG - %s", board)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RunLogModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, name := range m.boards {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name = truncateName(name, sidebarWidth-6)
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

func (m RunLogModel) renderNarrowLayout() string {
	var b strings.Builder

	if board := m.Board(); board != "" {
		b.WriteString(centerText(fmt.Sprintf("< %s >", board), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

func (m RunLogModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Could not read the run log:\n" + m.err.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No solves recorded yet.\nRun gridpath solve to record one.")
	}
	return m.table.View()
}

// Board returns the selected board name, or "" when nothing is recorded.
func (m RunLogModel) Board() string {
	if len(m.boards) == 0 {
		return ""
	}
	return m.boards[m.cursor]
}

// Runs returns the runs shown for the selected board.
func (m RunLogModel) Runs() []storage.Run {
	return m.runs
}

// IsQuitting reports whether the user closed the browser.
func (m RunLogModel) IsQuitting() bool {
	return m.quitting
}

// truncateName shortens name to at most width terminal cells, marking the
// cut with a trailing ".".
func truncateName(name string, width int) string {
	return runewidth.Truncate(name, width, ".")
}

// centerText centers text within the given width, measured in terminal cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// RunRunLog runs the run log browser in the alternate screen.
func RunRunLog(source RunSource, board string, width, height int) error {
	p := tea.NewProgram(
		NewRunLogModel(source, board, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
