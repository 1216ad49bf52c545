// Package config provides YAML-based configuration loading for gridpath.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Config contains all configuration for the gridpath tool.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Board   BoardConfig   `yaml:"board"`
	Render  RenderConfig  `yaml:"render"`
	Replay  ReplayConfig  `yaml:"replay"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// Point is a board coordinate as written in config files.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// String formats the point as "row,col", the form accepted by ParsePoint.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// SearchConfig defines the default endpoints of a solve.
type SearchConfig struct {
	Start Point `yaml:"start"`
	Goal  Point `yaml:"goal"`
}

// BoardConfig defines where boards are read from.
type BoardConfig struct {
	Path string `yaml:"path"` // Board used when none is given on the command line
	Dir  string `yaml:"dir"`  // Directory scanned by "check"
}

// RenderConfig defines how boards are drawn.
type RenderConfig struct {
	Color  string         `yaml:"color"`  // "auto", "always" or "never"
	Glyphs string         `yaml:"glyphs"` // "emoji" or "ascii"
	Custom GlyphOverrides `yaml:"custom,omitempty"`
}

// GlyphOverrides replaces individual glyphs of the selected set.
type GlyphOverrides struct {
	Empty    string `yaml:"empty,omitempty"`
	Obstacle string `yaml:"obstacle,omitempty"`
	Closed   string `yaml:"closed,omitempty"`
	Path     string `yaml:"path,omitempty"`
	Start    string `yaml:"start,omitempty"`
	Goal     string `yaml:"goal,omitempty"`
}

// ReplayConfig defines the replay viewer.
type ReplayConfig struct {
	FPS  int  `yaml:"fps"`  // Search steps shown per second
	Loop bool `yaml:"loop"` // Restart when the replay finishes
}

// StorageConfig defines the run log.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DB      string `yaml:"db"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn" or "error"
}

// ServerConfig defines the SSH replay server.
type ServerConfig struct {
	Address     string `yaml:"address"`
	HostKey     string `yaml:"host_key"`
	IdleTimeout int    `yaml:"idle_timeout_minutes"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Validate checks the configuration for values the tool cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.Search.Start.Row < 0 || c.Search.Start.Col < 0 {
		errs = append(errs, fmt.Errorf("search.start %s is negative", c.Search.Start))
	}
	if c.Search.Goal.Row < 0 || c.Search.Goal.Col < 0 {
		errs = append(errs, fmt.Errorf("search.goal %s is negative", c.Search.Goal))
	}
	switch c.Render.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("render.color %q is not auto, always or never", c.Render.Color))
	}
	switch strings.ToLower(c.Render.Glyphs) {
	case "emoji", "ascii":
	default:
		errs = append(errs, fmt.Errorf("render.glyphs %q is not emoji or ascii", c.Render.Glyphs))
	}
	if c.Replay.FPS <= 0 {
		errs = append(errs, fmt.Errorf("replay.fps must be positive, got %d", c.Replay.FPS))
	}
	if c.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout_minutes must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// ParsePoint parses "row,col".
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("coordinate %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, fmt.Errorf("coordinate %q: bad row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, fmt.Errorf("coordinate %q: bad column: %w", s, err)
	}
	return Point{Row: row, Col: col}, nil
}
