package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/chrono/internal/domain"
)

// ErrNotFound is wrapped by lookups that match no row.
var ErrNotFound = errors.New("not found")

// HistoryArchiveRepo stores completed-timer history in the archive.
type HistoryArchiveRepo interface {
	// Append inserts e under runID. occurrence counts the entries before e
	// in the same log that share its Key. It reports false when that exact
	// occurrence is already archived.
	Append(ctx context.Context, runID string, e domain.HistoryEntry, occurrence int) (bool, error)
	List(ctx context.Context) ([]domain.HistoryEntry, error)
	ListByCategory(ctx context.Context, category string) ([]domain.HistoryEntry, error)
	CategoryTotals(ctx context.Context) ([]domain.CategoryTotal, error)
}

// ExportRunRepo records archive export runs.
type ExportRunRepo interface {
	Create(ctx context.Context, r *domain.ExportRun) error
	UpdateCounts(ctx context.Context, id string, total, inserted int) error
	GetByID(ctx context.Context, id string) (*domain.ExportRun, error)
	List(ctx context.Context) ([]*domain.ExportRun, error)
}
