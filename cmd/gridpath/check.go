package main

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridpath/internal/board"
	"github.com/vovakirdan/gridpath/internal/grid"
)

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Validate every board in a directory",
	Long: `Load every .board, .txt, .csv, .yaml and .yml file under a directory
and report its size and obstacle count, or why it could not be loaded.

Exits 1 if any board is invalid.

Examples:
  gridpath check
  gridpath check boards/`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	a := mustApp()

	dir := a.cfg.Board.Dir
	if len(args) > 0 {
		dir = args[0]
	}

	invalid, err := a.check(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if invalid > 0 {
		os.Exit(1)
	}
}

// check prints a report for dir and returns the number of invalid boards.
func (a *app) check(dir string) (int, error) {
	files, invalid, err := board.LoadAll(dir)
	if err != nil {
		return 0, err
	}

	if len(files) == 0 && len(invalid) == 0 {
		fmt.Fprintf(a.out, "No boards found in %s.\n", dir)
		return 0, nil
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, f := range files {
		if len(f.Name) > maxNameLen {
			maxNameLen = len(f.Name)
		}
	}

	fmt.Fprintf(a.out, "  %-*s  %-7s  %-9s  %s\n", maxNameLen, "Name", "Size", "Obstacles", "Path")
	fmt.Fprintf(a.out, "  %-*s  %-7s  %-9s  %s\n", maxNameLen, "----", "----", "---------", "----")
	for _, f := range files {
		size := fmt.Sprintf("%dx%d", f.Board.Rows(), f.Board.Cols())
		fmt.Fprintf(a.out, "  %-*s  %-7s  %-9d  %s\n", maxNameLen, f.Name, size, f.Board.Count(grid.Obstacle), f.Path)
		if meta := formatMetadata(f.Metadata); meta != "" {
			fmt.Fprintf(a.out, "  %-*s  %s\n", maxNameLen, "", meta)
		}
	}

	if len(invalid) > 0 {
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "Invalid boards (%d):\n", len(invalid))
		for _, e := range invalid {
			fmt.Fprintf(a.out, "  %v\n", e.Err)
			a.logger.Warn("invalid board", "path", e.Path, "error", e.Err)
		}
	}

	return len(invalid), nil
}

// formatMetadata renders board metadata as sorted key=value pairs.
func formatMetadata(meta map[string]string) string {
	parts := make([]string, 0, len(meta))
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		parts = append(parts, k+"="+meta[k])
	}
	return strings.Join(parts, " ")
}
