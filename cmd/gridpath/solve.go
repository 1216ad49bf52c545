package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridpath/internal/board"
	"github.com/vovakirdan/gridpath/internal/config"
	"github.com/vovakirdan/gridpath/internal/grid"
	"github.com/vovakirdan/gridpath/internal/render"
	"github.com/vovakirdan/gridpath/internal/search"
	"github.com/vovakirdan/gridpath/internal/storage"
)

var (
	flagStart    string
	flagGoal     string
	flagColor    string
	flagRoute    bool
	flagNoRecord bool
	flagQuiet    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [board]",
	Short: "Solve a board and print the result",
	Long: `Load a board, print it, search from start to goal and print the
solved board with every expanded cell marked as path.

Start and goal come from --start/--goal, then from the board file (YAML
boards only), then from the config (default 0,0 and 4,5).

When no path exists the tool prints "No path found" and exits 0. Bad
coordinates or malformed boards exit 1.

Examples:
  gridpath solve
  gridpath solve 1.board
  gridpath solve maze.yaml --start 0,0 --goal 9,9 --route
  gridpath solve 1.board --glyphs ascii --color never`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagStart, "start", "", "Start cell as row,col")
	solveCmd.Flags().StringVar(&flagGoal, "goal", "", "Goal cell as row,col")
	solveCmd.Flags().StringVar(&flagColor, "color", "", "Colour output: auto, always, never (default from config)")
	solveCmd.Flags().BoolVar(&flagRoute, "route", false, "Also print the start-to-goal route")
	solveCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record this solve in the run log")
	solveCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Skip printing the unsolved board")
}

// solveRequest describes one solve invocation.
type solveRequest struct {
	Path   string
	Start  string
	Goal   string
	Color  string
	Route  bool
	Record bool
	Quiet  bool
}

func runSolve(cmd *cobra.Command, args []string) {
	a := mustApp()

	req := solveRequest{
		Start:  flagStart,
		Goal:   flagGoal,
		Color:  flagColor,
		Route:  flagRoute,
		Record: !flagNoRecord,
		Quiet:  flagQuiet,
	}
	if len(args) > 0 {
		req.Path = args[0]
	}

	if _, err := a.solve(req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// solve runs one search and writes the boards to a.out.
func (a *app) solve(req solveRequest) (search.Result, error) {
	f, err := a.loadBoard(req.Path)
	if err != nil {
		return search.Result{}, err
	}

	start, goal, err := a.endpoints(f, req.Start, req.Goal)
	if err != nil {
		return search.Result{}, err
	}

	glyphs, err := a.glyphs()
	if err != nil {
		return search.Result{}, err
	}

	mode := req.Color
	if mode == "" {
		mode = a.cfg.Render.Color
	}
	draw, err := a.drawer(mode, glyphs)
	if err != nil {
		return search.Result{}, err
	}

	if !req.Quiet {
		fmt.Fprint(a.out, draw(f.Board, nil))
		fmt.Fprintln(a.out)
	}

	res, err := search.Search(f.Board, start, goal)
	if err != nil {
		return search.Result{}, err
	}
	a.logger.Info("search finished",
		"board", f.Name,
		"start", start,
		"goal", goal,
		"outcome", res.Outcome,
		"expanded", res.Expanded,
	)

	if res.Found() {
		fmt.Fprint(a.out, draw(res.Board, &[2]grid.Coord{start, goal}))
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, render.Summary(res))
		if req.Route {
			fmt.Fprintln(a.out, "Route:", formatRoute(res.Route))
		}
	} else {
		fmt.Fprintln(a.out, "No path found")
	}

	if req.Record {
		a.record(f, start, goal, res)
	}
	return res, nil
}

// drawFunc renders a board, optionally marking start and goal.
type drawFunc func(b *grid.Board, ends *[2]grid.Coord) string

// drawer picks plain or styled rendering for the colour mode.
func (a *app) drawer(mode string, glyphs render.Glyphs) (drawFunc, error) {
	var styled bool
	switch mode {
	case config.ColorAlways:
		styled = true
		lipgloss.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		styled = false
	case config.ColorAuto:
		styled = isTerminal(a.out)
	default:
		return nil, fmt.Errorf("unknown colour mode %q", mode)
	}

	theme := render.DefaultTheme()
	return func(b *grid.Board, ends *[2]grid.Coord) string {
		opts := render.Options{Glyphs: glyphs}
		if ends != nil {
			opts = opts.WithEndpoints(ends[0], ends[1])
		}
		if styled {
			return render.Styled(b, theme, opts)
		}
		return render.Plain(b, opts)
	}, nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) record(f board.File, start, goal grid.Coord, res search.Result) {
	store := a.openStore()
	if store == nil {
		return
	}
	defer store.Close()

	id, err := store.SaveRun(storage.NewRun(f.Name, f.Board, start, goal, res))
	if err != nil {
		a.logger.Warn("could not record run", "error", err)
		return
	}
	a.logger.Debug("run recorded", "id", id)
}

func formatRoute(route []grid.Coord) string {
	parts := make([]string, len(route))
	for i, c := range route {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}
