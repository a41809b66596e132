package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/chrono/internal/domain"
)

// ErrExport wraps every failure to write or share the history file.
var ErrExport = errors.New("export failed")

// Exporter writes the history log to FileName in a directory and shares it.
type Exporter struct {
	dir    string
	sharer Sharer
}

// NewExporter creates an Exporter. A nil sharer behaves like NoopSharer.
func NewExporter(dir string, sharer Sharer) *Exporter {
	if sharer == nil {
		sharer = NoopSharer{}
	}
	return &Exporter{dir: dir, sharer: sharer}
}

// Path returns where Export writes.
func (e *Exporter) Path() string {
	return filepath.Join(e.dir, FileName)
}

// Export replaces the history file with entries and shares it. The file is
// written to a temp name and renamed, so a failed export never leaves a
// truncated file behind.
func (e *Exporter) Export(ctx context.Context, entries []domain.HistoryEntry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExport, err)
	}
	data, err := Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating export directory: %w", ErrExport, err)
	}

	path := e.Path()
	tmp, err := os.CreateTemp(e.dir, FileName+".*")
	if err != nil {
		return "", fmt.Errorf("%w: creating temp file: %w", ErrExport, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: writing %s: %w", ErrExport, path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: closing %s: %w", ErrExport, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("%w: replacing %s: %w", ErrExport, path, err)
	}

	if err := e.sharer.Share(ctx, path, data); err != nil {
		return path, fmt.Errorf("%w: sharing %s: %w", ErrExport, path, err)
	}
	return path, nil
}
