// Package board loads board files from disk.
// This package depends on grid but grid does not depend on board.
package board

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/gridpath/internal/board/formats"
	"github.com/vovakirdan/gridpath/internal/grid"
)

// File is a loaded board file.
type File struct {
	Name     string
	Path     string
	Board    *grid.Board
	Start    *grid.Coord // optional, YAML boards only
	Goal     *grid.Coord // optional, YAML boards only
	Metadata map[string]string
}

// Load reads a single board file, choosing the parser by extension.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("board: reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return File{}, fmt.Errorf("board: parsing file %s: %w", path, err)
	}

	name := parsed.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return File{
		Name:     name,
		Path:     path,
		Board:    parsed.Board,
		Start:    parsed.Start,
		Goal:     parsed.Goal,
		Metadata: parsed.Metadata,
	}, nil
}

// LoadError records a file that could not be loaded by LoadAll.
type LoadError struct {
	Path string
	Err  error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e LoadError) Unwrap() error {
	return e.Err
}

// LoadAll recursively scans dir and loads every supported board file.
// Files that fail to parse are returned separately so callers can report
// them. Boards are sorted by name for deterministic ordering.
func LoadAll(dir string) ([]File, []LoadError, error) {
	var (
		files   []File
		invalid []LoadError
	)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !IsSupported(path) {
			return nil
		}

		f, err := Load(path)
		if err != nil {
			invalid = append(invalid, LoadError{Path: path, Err: err})
			return nil
		}
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("board: walking directory %s: %w", dir, err)
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Name != files[j].Name {
			return files[i].Name < files[j].Name
		}
		return files[i].Path < files[j].Path
	})

	return files, invalid, nil
}

// IsSupported reports whether the file extension has a parser.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Parsed, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".board", ".txt", ".csv":
		b, err := formats.ParseText(bytes.NewReader(data))
		if err != nil {
			return formats.Parsed{}, err
		}
		return formats.Parsed{Board: b}, nil
	default:
		return formats.Parsed{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}
