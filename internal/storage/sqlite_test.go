package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridpath/internal/grid"
	"github.com/vovakirdan/gridpath/internal/search"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func solve(t *testing.T, b *grid.Board, start, goal grid.Coord) search.Result {
	t.Helper()
	res, err := search.Search(b, start, goal)
	require.NoError(t, err)
	return res
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	require.NoError(t, err, "database file was not created")
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	require.NoError(t, err, "database file was not created in nested directory")
}

func TestNewRun(t *testing.T) {
	b := grid.NewBoard(5, 6)
	start, goal := grid.At(0, 0), grid.At(4, 5)

	run := NewRun("open", b, start, goal, solve(t, b, start, goal))
	require.Equal(t, "open", run.Board)
	require.Equal(t, 5, run.Rows)
	require.Equal(t, 6, run.Cols)
	require.True(t, run.Found())
	require.Equal(t, 10, run.Expanded)
	require.Equal(t, 10, run.PathCells)
	require.Equal(t, 10, run.RouteLen)

	wall := grid.NewBoard(3, 1)
	wall.Set(grid.At(1, 0), grid.Obstacle)
	failed := NewRun("wall", wall, grid.At(0, 0), grid.At(2, 0), solve(t, wall, grid.At(0, 0), grid.At(2, 0)))
	require.False(t, failed.Found())
	require.Equal(t, 0, failed.PathCells)
	require.Equal(t, 0, failed.RouteLen)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	b := grid.NewBoard(3, 3)
	res := solve(t, b, grid.At(0, 0), grid.At(2, 2))

	for i := 0; i < 3; i++ {
		_, err := store.SaveRun(NewRun("alpha", b, grid.At(0, 0), grid.At(2, 2), res))
		require.NoError(t, err)
	}
	id, err := store.SaveRun(NewRun("beta", b, grid.At(0, 0), grid.At(2, 2), res))
	require.NoError(t, err)
	require.Positive(t, id)

	alpha, err := store.RunsForBoard("alpha", 10)
	require.NoError(t, err)
	require.Len(t, alpha, 3)
	require.Equal(t, grid.At(2, 2), alpha[0].Goal)
	require.Equal(t, search.Succeeded.String(), alpha[0].Outcome)
	require.Equal(t, res.Expanded, alpha[0].Expanded)

	recent, err := store.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "beta", recent[0].Board, "newest first")
	require.Equal(t, id, recent[0].ID)
}

func TestStoreBoardStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.BoardStats("maze")
	require.NoError(t, err)
	require.Equal(t, BoardStats{Board: "maze"}, stats)

	b := grid.NewBoard(3, 1)
	ok := solve(t, b, grid.At(0, 0), grid.At(2, 0))
	b.Set(grid.At(1, 0), grid.Obstacle)
	blocked := solve(t, b, grid.At(0, 0), grid.At(2, 0))

	for _, res := range []search.Result{ok, ok, blocked} {
		_, err := store.SaveRun(NewRun("maze", b, grid.At(0, 0), grid.At(2, 0), res))
		require.NoError(t, err)
	}

	stats, err = store.BoardStats("maze")
	require.NoError(t, err)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 2, stats.Succeeded)
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	b := grid.NewBoard(1, 1)
	res := solve(t, b, grid.At(0, 0), grid.At(0, 0))
	_, err := store.SaveRun(NewRun("one", b, grid.At(0, 0), grid.At(0, 0), res))
	require.NoError(t, err)
	_, err = store.SaveRun(NewRun("two", b, grid.At(0, 0), grid.At(0, 0), res))
	require.NoError(t, err)

	require.NoError(t, store.ClearRuns("one"))

	one, err := store.RunsForBoard("one", 10)
	require.NoError(t, err)
	require.Empty(t, one)

	two, err := store.RunsForBoard("two", 10)
	require.NoError(t, err)
	require.Len(t, two, 1)
}

func TestStoreBoards(t *testing.T) {
	store := openTestStore(t)

	boards, err := store.Boards()
	require.NoError(t, err)
	require.Empty(t, boards)

	b := grid.NewBoard(1, 1)
	res := solve(t, b, grid.At(0, 0), grid.At(0, 0))
	for _, name := range []string{"zeta", "alpha", "zeta"} {
		_, err := store.SaveRun(NewRun(name, b, grid.At(0, 0), grid.At(0, 0), res))
		require.NoError(t, err)
	}

	boards, err = store.Boards()
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "zeta"}, boards)
}
