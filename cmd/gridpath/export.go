package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridpath/internal/board/formats"
)

var exportCmd = &cobra.Command{
	Use:   "export [board]",
	Short: "Print a board in the text format",
	Long: `Load a board in any supported format and print it as comma-separated
rows of 0 (open) and 1 (blocked). Start, goal and metadata of YAML boards
are dropped.

Examples:
  gridpath export boards/switchback.yaml > switchback.board`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExport,
}

func runExport(cmd *cobra.Command, args []string) {
	a := mustApp()

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	if err := a.export(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) export(path string) error {
	f, err := a.loadBoard(path)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, formats.FormatText(f.Board))
	return nil
}
