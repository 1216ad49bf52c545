// gridpath finds paths across grid boards with a Manhattan-guided best-first
// search and draws the result in the terminal.
//
// Usage:
//
//	gridpath solve [board]    - Solve a board and print the marked result
//	gridpath watch [board]    - Replay the search step by step
//	gridpath check [dir]      - Load every board in a directory and report problems
//	gridpath history [board]  - Show recorded solves
//	gridpath serve            - Serve the replay over SSH
//	gridpath export [board]   - Print a board in the text format
//	gridpath config           - Print the configuration in effect
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.gridpath/config.yaml, ./configs/gridpath.yaml)
//	--log-level <level> - debug, info, warn or error
//	--db <path>         - Run log database (default: ~/.gridpath/runs.db)
//	--glyphs <set>      - emoji or ascii
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagDBPath   string
	flagGlyphs   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridpath",
	Short: "gridpath - find paths across grid boards",
	Long: `gridpath searches a board of open and blocked cells for a path from a
start cell to a goal cell, moving up, down, left and right.

Boards are text files of comma-separated 0 (open) and 1 (blocked) cells,
one row per line, or YAML files.

Available commands:
  solve    - Solve a board and print the result
  watch    - Replay the search step by step
  check    - Validate every board in a directory
  history  - Show recorded solves
  serve    - Serve the replay over SSH
  export   - Print a board in the text format
  config   - Print the configuration

Examples:
  gridpath solve 1.board
  gridpath solve maze.yaml --start 0,0 --goal 4,5
  gridpath watch 1.board --fps 4
  gridpath check boards/
  gridpath history 1`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run log database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagGlyphs, "glyphs", "", "Glyph set: emoji, ascii (default from config)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}
