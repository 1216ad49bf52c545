// Package storage provides SQLite-based persistence for the run log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only the outcome of each solve is recorded; searches never read it back.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/gridpath/internal/grid"
	"github.com/vovakirdan/gridpath/internal/search"
)

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// Run represents a single recorded solve.
type Run struct {
	ID        int64
	Board     string // Board name
	Rows      int
	Cols      int
	Start     grid.Coord
	Goal      grid.Coord
	Outcome   string // search.Outcome name
	Expanded  int
	PathCells int // Cells marked Path on the result board
	RouteLen  int // Cells on the start-to-goal route
	CreatedAt time.Time
}

// Found reports whether the recorded solve reached its goal.
func (r Run) Found() bool {
	return r.Outcome == search.Succeeded.String()
}

// BoardStats summarises the runs recorded for one board.
type BoardStats struct {
	Board     string
	Total     int
	Succeeded int
}

// NewRun builds a Run from a finished search.
func NewRun(boardName string, b *grid.Board, start, goal grid.Coord, res search.Result) Run {
	run := Run{
		Board:    boardName,
		Rows:     b.Rows(),
		Cols:     b.Cols(),
		Start:    start,
		Goal:     goal,
		Outcome:  res.Outcome.String(),
		Expanded: res.Expanded,
		RouteLen: len(res.Route),
	}
	if res.Board != nil {
		run.PathCells = res.Board.Count(grid.Path)
	}
	return run
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board TEXT NOT NULL,
			board_rows INTEGER NOT NULL,
			board_cols INTEGER NOT NULL,
			start_row INTEGER NOT NULL,
			start_col INTEGER NOT NULL,
			goal_row INTEGER NOT NULL,
			goal_col INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			expanded INTEGER NOT NULL DEFAULT 0,
			path_cells INTEGER NOT NULL DEFAULT 0,
			route_len INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_board ON runs(board);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished solve.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (board, board_rows, board_cols, start_row, start_col, goal_row, goal_col, outcome, expanded, path_cells, route_len)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Board,
		run.Rows,
		run.Cols,
		run.Start.Row,
		run.Start.Col,
		run.Goal.Row,
		run.Goal.Col,
		run.Outcome,
		run.Expanded,
		run.PathCells,
		run.RouteLen,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, board, board_rows, board_cols, start_row, start_col, goal_row, goal_col,
		        outcome, expanded, path_cells, route_len, created_at`

// RecentRuns retrieves the most recent runs across all boards, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RunsForBoard retrieves the most recent runs for one board, newest first.
func (s *Store) RunsForBoard(board string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE board = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		board, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// BoardStats returns run totals for one board.
// Returns zero counts if the board has never been solved.
func (s *Store) BoardStats(board string) (BoardStats, error) {
	stats := BoardStats{Board: board}
	var succeeded sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END)
		 FROM runs
		 WHERE board = ?`,
		search.Succeeded.String(), board,
	).Scan(&stats.Total, &succeeded)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query board stats: %w", err)
	}

	if succeeded.Valid {
		stats.Succeeded = int(succeeded.Int64)
	}
	return stats, nil
}

// Boards returns the names of every board with recorded runs, sorted.
func (s *Store) Boards() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT board FROM runs ORDER BY board`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query boards: %w", err)
	}
	defer rows.Close()

	var boards []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan board: %w", err)
		}
		boards = append(boards, name)
	}
	return boards, rows.Err()
}

// ClearRuns deletes all runs for the given board.
func (s *Store) ClearRuns(board string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE board = ?", board)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Board,
			&r.Rows,
			&r.Cols,
			&r.Start.Row,
			&r.Start.Col,
			&r.Goal.Row,
			&r.Goal.Col,
			&r.Outcome,
			&r.Expanded,
			&r.PathCells,
			&r.RouteLen,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
