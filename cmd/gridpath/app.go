package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridpath/internal/board"
	"github.com/vovakirdan/gridpath/internal/config"
	"github.com/vovakirdan/gridpath/internal/grid"
	"github.com/vovakirdan/gridpath/internal/render"
	"github.com/vovakirdan/gridpath/internal/storage"
)

// app carries what every command needs: config, logger and output.
type app struct {
	cfg    config.Config
	logger *log.Logger
	out    io.Writer
}

// newApp loads the config named by --config and applies the global flags.
func newApp(out, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}
	if flagGlyphs != "" {
		cfg.Render.Glyphs = flagGlyphs
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger, err := newLogger(logOut, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", flagConfig, "board", cfg.Board.Path)

	return &app{cfg: cfg, logger: logger, out: out}, nil
}

// mustApp is newApp for cobra Run functions.
func mustApp() *app {
	a, err := newApp(os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "gridpath",
		Level:           lvl,
	}), nil
}

// loadBoard loads path, or the configured default board when path is empty.
func (a *app) loadBoard(path string) (board.File, error) {
	if path == "" {
		path = a.cfg.Board.Path
	}
	f, err := board.Load(path)
	if err != nil {
		return board.File{}, err
	}
	a.logger.Debug("board loaded", "board", f.Name, "rows", f.Board.Rows(), "cols", f.Board.Cols(),
		"obstacles", f.Board.Count(grid.Obstacle))
	return f, nil
}

// endpoints resolves start and goal. Flags win over the board file, which
// wins over the config.
func (a *app) endpoints(f board.File, startFlag, goalFlag string) (grid.Coord, grid.Coord, error) {
	start := toCoord(a.cfg.Search.Start)
	goal := toCoord(a.cfg.Search.Goal)
	if f.Start != nil {
		start = *f.Start
	}
	if f.Goal != nil {
		goal = *f.Goal
	}

	if startFlag != "" {
		p, err := config.ParsePoint(startFlag)
		if err != nil {
			return start, goal, fmt.Errorf("--start: %w", err)
		}
		start = toCoord(p)
	}
	if goalFlag != "" {
		p, err := config.ParsePoint(goalFlag)
		if err != nil {
			return start, goal, fmt.Errorf("--goal: %w", err)
		}
		goal = toCoord(p)
	}
	return start, goal, nil
}

func toCoord(p config.Point) grid.Coord {
	return grid.At(p.Row, p.Col)
}

// glyphs returns the configured glyph set with custom overrides applied.
func (a *app) glyphs() (render.Glyphs, error) {
	g, err := render.GlyphSet(a.cfg.Render.Glyphs)
	if err != nil {
		return render.Glyphs{}, err
	}
	c := a.cfg.Render.Custom
	return g.Merge(render.Glyphs{
		Empty:    c.Empty,
		Obstacle: c.Obstacle,
		Closed:   c.Closed,
		Path:     c.Path,
		Start:    c.Start,
		Goal:     c.Goal,
	}), nil
}

// openStore opens the run log. Returns nil when recording is disabled or
// the database cannot be opened; solving never depends on it.
func (a *app) openStore() *storage.Store {
	if !a.cfg.Storage.Enabled {
		return nil
	}
	store, err := storage.Open(a.cfg.Storage.DB)
	if err != nil {
		a.logger.Warn("could not open run log", "db", a.cfg.Storage.DB, "error", err)
		return nil
	}
	return store
}
