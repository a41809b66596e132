package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/store"
)

var (
	// ErrTimerNotFound is returned for ids absent from the store.
	ErrTimerNotFound = errors.New("timer not found")
	// ErrCategoryNotFound is returned for categories with no timers.
	ErrCategoryNotFound = errors.New("category not found")
)

// TimerStore is the store surface the services drive.
type TimerStore interface {
	Snapshot() store.Snapshot
	History() []domain.HistoryEntry
	AddTimer(name string, duration int, category string, halfwayAlert bool) domain.Timer
	RemoveTimer(id string) store.Snapshot
	StartTimer(id string) store.Snapshot
	PauseTimer(id string) store.Snapshot
	ResetTimer(id string) store.Snapshot
	CompleteTimer(id string) store.Snapshot
	StartCategoryTimers(category string) store.Snapshot
	PauseCategoryTimers(category string) store.Snapshot
	ResetCategoryTimers(category string) store.Snapshot
}

// TimerService validates presentation input and applies timer operations.
// Every method returns the snapshot produced by the operation.
type TimerService interface {
	Add(ctx context.Context, name, category string, duration int, halfwayAlert bool) (domain.Timer, error)
	Start(ctx context.Context, id string) (store.Snapshot, error)
	Pause(ctx context.Context, id string) (store.Snapshot, error)
	Reset(ctx context.Context, id string) (store.Snapshot, error)
	Complete(ctx context.Context, id string) (store.Snapshot, error)
	Remove(ctx context.Context, id string) (store.Snapshot, error)
	StartCategory(ctx context.Context, category string) (store.Snapshot, error)
	PauseCategory(ctx context.Context, category string) (store.Snapshot, error)
	ResetCategory(ctx context.Context, category string) (store.Snapshot, error)
}

// ExportResult describes a finished history export.
type ExportResult struct {
	Path    string
	Entries int
	Run     *domain.ExportRun // nil when no archive is configured
}

// HistoryService exports the completed-timer log.
type HistoryService interface {
	Entries() []domain.HistoryEntry
	Export(ctx context.Context) (*ExportResult, error)
}

// FileExporter writes and shares the history file.
type FileExporter interface {
	Export(ctx context.Context, entries []domain.HistoryEntry) (string, error)
}

// HistoryArchiver appends history to a persistent archive.
type HistoryArchiver interface {
	Archive(ctx context.Context, source string, entries []domain.HistoryEntry) (domain.ExportRun, error)
}
