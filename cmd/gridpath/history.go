package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridpath/internal/platform/tui"
	"github.com/vovakirdan/gridpath/internal/storage"
)

var (
	flagLimit  int
	flagClear  bool
	flagBrowse bool
)

var historyCmd = &cobra.Command{
	Use:   "history [board]",
	Short: "Show recorded solves",
	Long: `Display recent solves from the run log, optionally for one board.
Board names are file names without extension, or the name field of YAML boards.

Examples:
  gridpath history
  gridpath history 1 --limit 5
  gridpath history 1 --clear
  gridpath history --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs for the board")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the run log interactively")
}

func runHistory(cmd *cobra.Command, args []string) {
	a := mustApp()

	boardName := ""
	if len(args) > 0 {
		boardName = args[0]
	}

	if flagClear {
		if boardName == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a board name")
			os.Exit(1)
		}
		if err := a.clearHistory(boardName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagBrowse {
		if err := a.browseHistory(boardName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := a.history(boardName, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// errNoRunLog is returned when the run log is disabled or cannot be opened.
var errNoRunLog = errors.New("run log unavailable")

func (a *app) history(boardName string, limit int) error {
	store := a.openStore()
	if store == nil {
		return errNoRunLog
	}
	defer store.Close()

	var (
		runs []storage.Run
		err  error
	)
	if boardName == "" {
		runs, err = store.RecentRuns(limit)
	} else {
		runs, err = store.RunsForBoard(boardName, limit)
	}
	if err != nil {
		return err
	}

	if boardName == "" {
		fmt.Fprintln(a.out, "Recent solves")
	} else {
		fmt.Fprintf(a.out, "Recent solves - %s\n", boardName)
	}
	fmt.Fprintln(a.out)

	if len(runs) == 0 {
		fmt.Fprintln(a.out, "No solves recorded yet.")
		return nil
	}

	// Print header
	fmt.Fprintf(a.out, "  %-10s  %-7s  %-13s  %-9s  %-8s  %s\n", "Board", "Size", "Start->Goal", "Outcome", "Expanded", "Date")
	fmt.Fprintf(a.out, "  %-10s  %-7s  %-13s  %-9s  %-8s  %s\n", "-----", "----", "-----------", "-------", "--------", "----")

	for _, r := range runs {
		size := fmt.Sprintf("%dx%d", r.Rows, r.Cols)
		ends := fmt.Sprintf("%v->%v", r.Start, r.Goal)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(a.out, "  %-10s  %-7s  %-13s  %-9s  %-8d  %s\n", r.Board, size, ends, r.Outcome, r.Expanded, dateStr)
	}

	if boardName != "" {
		stats, err := store.BoardStats(boardName)
		if err == nil {
			fmt.Fprintln(a.out)
			fmt.Fprintf(a.out, "Solved %d of %d runs\n", stats.Succeeded, stats.Total)
		}
	}
	return nil
}

func (a *app) clearHistory(boardName string) error {
	store := a.openStore()
	if store == nil {
		return errNoRunLog
	}
	defer store.Close()

	if err := store.ClearRuns(boardName); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Cleared runs for %s\n", boardName)
	return nil
}

func (a *app) browseHistory(boardName string) error {
	store := a.openStore()
	if store == nil {
		return errNoRunLog
	}
	defer store.Close()

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return tui.RunRunLog(store, boardName, width, height)
}
