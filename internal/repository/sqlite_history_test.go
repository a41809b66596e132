package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyTestSetup(t *testing.T) (*SQLiteHistoryRepo, *SQLiteExportRunRepo) {
	t.Helper()
	db := testutil.NewTestArchive(t)
	testutil.InsertExportRun(t, db, "run-1")
	return NewSQLiteHistoryRepo(db), NewSQLiteExportRunRepo(db)
}

func TestHistoryRepo_AppendAndList(t *testing.T) {
	repo, _ := historyTestSetup(t)
	ctx := context.Background()

	tea := testutil.NewTestHistoryEntry("t1", "Tea", "Kitchen", 180, 3*time.Minute)
	eggs := testutil.NewTestHistoryEntry("t2", "Eggs", "Kitchen", 420, 7*time.Minute)
	for _, e := range []domain.HistoryEntry{eggs, tea} {
		inserted, err := repo.Append(ctx, "run-1", e, 0)
		require.NoError(t, err)
		assert.True(t, inserted)
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, tea, got[0], "ordered by completion time")
	assert.Equal(t, eggs, got[1])
}

func TestHistoryRepo_AppendIgnoresDuplicates(t *testing.T) {
	repo, _ := historyTestSetup(t)
	ctx := context.Background()

	e := testutil.NewTestHistoryEntry("t1", "Tea", "Kitchen", 180, time.Minute)
	inserted, err := repo.Append(ctx, "run-1", e, 0)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = repo.Append(ctx, "run-1", e, 0)
	require.NoError(t, err)
	assert.False(t, inserted)

	// A second completion of the same timer is a distinct entry.
	again := testutil.NewTestHistoryEntry("t1", "Tea", "Kitchen", 180, 5*time.Minute)
	inserted, err = repo.Append(ctx, "run-1", again, 0)
	require.NoError(t, err)
	assert.True(t, inserted)

	// So is another completion in the same millisecond.
	inserted, err = repo.Append(ctx, "run-1", e, 1)
	require.NoError(t, err)
	assert.True(t, inserted)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestHistoryRepo_AppendUnknownRunFails(t *testing.T) {
	repo, _ := historyTestSetup(t)

	e := testutil.NewTestHistoryEntry("t1", "Tea", "Kitchen", 180, time.Minute)
	_, err := repo.Append(context.Background(), "no-such-run", e, 0)
	assert.Error(t, err)
}

func TestHistoryRepo_ListByCategory(t *testing.T) {
	repo, _ := historyTestSetup(t)
	ctx := context.Background()

	require.NoError(t, appendAll(ctx, repo,
		testutil.NewTestHistoryEntry("t1", "Tea", "Kitchen", 180, time.Minute),
		testutil.NewTestHistoryEntry("t2", "Plank", "Workout", 60, 2*time.Minute),
		testutil.NewTestHistoryEntry("t3", "Eggs", "Kitchen", 420, 3*time.Minute),
	))

	kitchen, err := repo.ListByCategory(ctx, "Kitchen")
	require.NoError(t, err)
	require.Len(t, kitchen, 2)
	assert.Equal(t, "Tea", kitchen[0].Name)
	assert.Equal(t, "Eggs", kitchen[1].Name)

	none, err := repo.ListByCategory(ctx, "Garden")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestHistoryRepo_CategoryTotals(t *testing.T) {
	repo, _ := historyTestSetup(t)
	ctx := context.Background()

	require.NoError(t, appendAll(ctx, repo,
		testutil.NewTestHistoryEntry("t1", "Tea", "Kitchen", 180, time.Minute),
		testutil.NewTestHistoryEntry("t2", "Plank", "Workout", 60, 2*time.Minute),
		testutil.NewTestHistoryEntry("t3", "Eggs", "Kitchen", 420, 3*time.Minute),
	))

	totals, err := repo.CategoryTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryTotal{
		{Category: "Kitchen", Completions: 2, TotalSeconds: 600},
		{Category: "Workout", Completions: 1, TotalSeconds: 60},
	}, totals)
}

func TestExportRunRepo_CreateUpdateGet(t *testing.T) {
	_, runs := historyTestSetup(t)
	ctx := context.Background()

	run := &domain.ExportRun{ID: "run-2", ExportedAt: testutil.TestNow, Source: "tui"}
	require.NoError(t, runs.Create(ctx, run))
	require.NoError(t, runs.UpdateCounts(ctx, "run-2", 5, 3))

	got, err := runs.GetByID(ctx, "run-2")
	require.NoError(t, err)
	assert.Equal(t, "tui", got.Source)
	assert.Equal(t, 5, got.Total)
	assert.Equal(t, 3, got.Inserted)
	assert.True(t, testutil.TestNow.Equal(got.ExportedAt))

	all, err := runs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestExportRunRepo_NotFound(t *testing.T) {
	_, runs := historyTestSetup(t)
	ctx := context.Background()

	_, err := runs.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = runs.UpdateCounts(ctx, "missing", 1, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func appendAll(ctx context.Context, repo *SQLiteHistoryRepo, entries ...domain.HistoryEntry) error {
	for _, e := range entries {
		if _, err := repo.Append(ctx, "run-1", e, 0); err != nil {
			return err
		}
	}
	return nil
}
