package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArchiver(t *testing.T) *Archiver {
	t.Helper()
	database := testutil.NewTestArchive(t)
	return NewArchiver(testutil.NewTestUoW(database),
		WithArchiveClock(func() time.Time { return testutil.TestNow }),
		WithRunIDs(testutil.SeqIDs("run")),
	)
}

func TestArchiver_ArchiveAndRead(t *testing.T) {
	a := newTestArchiver(t)
	ctx := context.Background()

	run, err := a.Archive(ctx, "tui", sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, 2, run.Total)
	assert.Equal(t, 2, run.Inserted)

	got, err := a.Entries(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), got)
}

func TestArchiver_RepeatedExportSkipsKnownEntries(t *testing.T) {
	a := newTestArchiver(t)
	ctx := context.Background()

	_, err := a.Archive(ctx, "run", sampleEntries())
	require.NoError(t, err)

	more := append(sampleEntries(), testutil.NewTestHistoryEntry("t1", "Tea", "Kitchen", 180, time.Hour))
	run, err := a.Archive(ctx, "run", more)
	require.NoError(t, err)
	assert.Equal(t, 3, run.Total)
	assert.Equal(t, 1, run.Inserted)

	runs, err := a.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 1, runs[1].Inserted)

	kitchen, err := a.Entries(ctx, "Kitchen")
	require.NoError(t, err)
	assert.Len(t, kitchen, 2)

	totals, err := a.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryTotal{
		{Category: "Kitchen", Completions: 2, TotalSeconds: 360},
		{Category: "Workout", Completions: 1, TotalSeconds: 60},
	}, totals)
}

func TestArchiver_SameMillisecondCompletionsKeepTheirRows(t *testing.T) {
	a := newTestArchiver(t)
	ctx := context.Background()

	tea := testutil.NewTestHistoryEntry("t1", "Tea", "Kitchen", 180, time.Minute)
	log := []domain.HistoryEntry{tea, tea}

	run, err := a.Archive(ctx, "run", log)
	require.NoError(t, err)
	assert.Equal(t, 2, run.Inserted)

	run, err = a.Archive(ctx, "run", append(log, tea))
	require.NoError(t, err)
	assert.Equal(t, 1, run.Inserted)

	got, err := a.Entries(ctx, "Kitchen")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestArchiver_FailureRollsBack(t *testing.T) {
	database := testutil.NewTestArchive(t)
	boom := errors.New("disk full")
	// Exec 1 creates the run, exec 2 inserts the first entry, exec 3 fails.
	a := NewArchiver(&testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: boom})
	ctx := context.Background()

	_, err := a.Archive(ctx, "run", sampleEntries())
	require.ErrorIs(t, err, ErrExport)
	require.ErrorIs(t, err, boom)

	clean := NewArchiver(testutil.NewTestUoW(database))
	got, err := clean.Entries(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)
	runs, err := clean.Runs(ctx)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestOpenArchiver_Close(t *testing.T) {
	a, err := OpenArchiver(t.TempDir() + "/nested/archive.db")
	require.NoError(t, err)
	_, err = a.Archive(context.Background(), "cli", sampleEntries())
	require.NoError(t, err)
	require.NoError(t, a.Close())
	assert.NoError(t, NewArchiver(nil).Close())
}
