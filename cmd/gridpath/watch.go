package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridpath/internal/platform/tui"
	"github.com/vovakirdan/gridpath/internal/render"
	"github.com/vovakirdan/gridpath/internal/search"
)

var (
	flagFPS  int
	flagLoop bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [board]",
	Short: "Replay the search step by step",
	Long: `Run the search once, then play it back one expansion per tick.

Controls:
  Space/P  - Pause
  N        - Single step
  R        - Restart
  +/-      - Faster/slower
  ?        - Help
  Q/Esc    - Quit

Examples:
  gridpath watch
  gridpath watch 1.board --fps 4
  gridpath watch maze.yaml --start 0,0 --goal 9,9 --loop`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagStart, "start", "", "Start cell as row,col")
	watchCmd.Flags().StringVar(&flagGoal, "goal", "", "Goal cell as row,col")
	watchCmd.Flags().IntVar(&flagFPS, "fps", 0, "Steps per second (default from config)")
	watchCmd.Flags().BoolVar(&flagLoop, "loop", false, "Restart when the replay finishes")
}

func runWatch(cmd *cobra.Command, args []string) {
	a := mustApp()

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	replay, err := a.prepareReplay(path, flagStart, flagGoal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := a.replayOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		opts.FPS = flagFPS
	}
	if flagLoop {
		opts.Loop = true
	}

	if err := tui.Run(replay, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// prepareReplay loads a board and runs the search once for playback.
func (a *app) prepareReplay(path, startFlag, goalFlag string) (tui.Replay, error) {
	f, err := a.loadBoard(path)
	if err != nil {
		return tui.Replay{}, err
	}
	start, goal, err := a.endpoints(f, startFlag, goalFlag)
	if err != nil {
		return tui.Replay{}, err
	}

	res, err := search.Search(f.Board, start, goal)
	if err != nil {
		return tui.Replay{}, err
	}
	a.logger.Debug("replay prepared", "board", f.Name, "steps", len(res.Trace), "outcome", res.Outcome)

	return tui.Replay{
		Title:  f.Name,
		Board:  f.Board,
		Start:  start,
		Goal:   goal,
		Result: res,
	}, nil
}

func (a *app) replayOptions() (tui.ReplayOptions, error) {
	glyphs, err := a.glyphs()
	if err != nil {
		return tui.ReplayOptions{}, err
	}
	return tui.ReplayOptions{
		FPS:    a.cfg.Replay.FPS,
		Loop:   a.cfg.Replay.Loop,
		Theme:  render.DefaultTheme(),
		Glyphs: glyphs,
	}, nil
}
