package history

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/testutil"
	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSharer struct {
	path  string
	data  []byte
	calls int
	err   error
}

func (r *recordingSharer) Share(_ context.Context, path string, data []byte) error {
	r.calls++
	r.path = path
	r.data = data
	return r.err
}

func sampleEntries() []domain.HistoryEntry {
	return []domain.HistoryEntry{
		testutil.NewTestHistoryEntry("t1", "Tea", "Kitchen", 180, 3*time.Minute),
		testutil.NewTestHistoryEntry("t2", "Plank", "Workout", 60, 5*time.Minute),
	}
}

func TestExporter_WritesFileAndShares(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sharer := &recordingSharer{}
	exp := NewExporter(dir, sharer)

	path, err := exp.Export(context.Background(), sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := Marshal(sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, want, written)

	assert.Equal(t, 1, sharer.calls)
	assert.Equal(t, path, sharer.path)
	assert.Equal(t, written, sharer.data)

	entries, err := filepath.Glob(filepath.Join(dir, "*"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestExporter_OverwritesPreviousExport(t *testing.T) {
	dir := t.TempDir()
	exp := NewExporter(dir, nil)

	_, err := exp.Export(context.Background(), sampleEntries())
	require.NoError(t, err)
	path, err := exp.Export(context.Background(), nil)
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(written))
}

func TestExporter_ShareFailure(t *testing.T) {
	boom := errors.New("share sheet dismissed")
	exp := NewExporter(t.TempDir(), &recordingSharer{err: boom})

	path, err := exp.Export(context.Background(), sampleEntries())
	require.ErrorIs(t, err, ErrExport)
	require.ErrorIs(t, err, boom)
	assert.FileExists(t, path, "the file is written before sharing")
}

func TestExporter_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	sharer := &recordingSharer{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExporter(dir, sharer).Export(ctx, sampleEntries())
	require.ErrorIs(t, err, ErrExport)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(dir, FileName))
	assert.Zero(t, sharer.calls)
}

func TestExporter_UnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	sharer := &recordingSharer{}

	_, err := NewExporter(filepath.Join(blocker, "sub"), sharer).Export(context.Background(), sampleEntries())
	require.ErrorIs(t, err, ErrExport)
	assert.Zero(t, sharer.calls)
}

func TestClipboardSharer(t *testing.T) {
	var copied string
	s := &ClipboardSharer{write: func(text string) error {
		copied = text
		return nil
	}}
	require.NoError(t, s.Share(context.Background(), "ignored", []byte(`[]`)))
	assert.Equal(t, "[]", copied)

	failing := &ClipboardSharer{write: func(string) error { return errors.New("no display") }}
	assert.Error(t, failing.Share(context.Background(), "", nil))

	assert.ErrorIs(t, (&ClipboardSharer{}).Share(context.Background(), "", nil), errNoClipboard)
}

func TestNewSharer(t *testing.T) {
	s, err := NewSharer("none", nil)
	require.NoError(t, err)
	assert.IsType(t, NoopSharer{}, s)

	_, err = NewSharer("airdrop", nil)
	assert.Error(t, err)
}

func TestNewSharer_Clipboard(t *testing.T) {
	saved := clipboard.Unsupported
	t.Cleanup(func() { clipboard.Unsupported = saved })

	clipboard.Unsupported = false
	s, err := NewSharer(" Clipboard ", nil)
	require.NoError(t, err)
	assert.IsType(t, &ClipboardSharer{}, s)

	clipboard.Unsupported = true
	s, err = NewSharer("clipboard", nil)
	require.NoError(t, err)
	assert.IsType(t, NoopSharer{}, s)

	dir := t.TempDir()
	path, err := NewExporter(dir, s).Export(context.Background(), sampleEntries())
	require.NoError(t, err)
	assert.FileExists(t, path)
}
