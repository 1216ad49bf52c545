package config

import (
	_ "embed"
)

//go:embed defaults/gridpath.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Start: Point{Row: 0, Col: 0},
			Goal:  Point{Row: 4, Col: 5},
		},
		Board: BoardConfig{
			Path: "1.board",
			Dir:  "boards",
		},
		Render: RenderConfig{
			Color:  ColorAuto,
			Glyphs: "emoji",
		},
		Replay: ReplayConfig{
			FPS:  8,
			Loop: false,
		},
		Storage: StorageConfig{
			Enabled: true,
			DB:      "~/.gridpath/runs.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:     ":23235",
			HostKey:     "",
			IdleTimeout: 30,
		},
	}
}
