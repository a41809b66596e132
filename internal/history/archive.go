package history

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chrono/internal/db"
	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/repository"
	"github.com/google/uuid"
)

// Archiver appends history into the SQLite archive. An entry is identified
// by its Key and how many earlier entries in the log share that Key, so the
// full log can be archived repeatedly while completions landing in the same
// millisecond each keep their own row.
type Archiver struct {
	uow   db.UnitOfWork
	now   func() time.Time
	newID func() string
	close func() error
}

// ArchiverOption configures an Archiver.
type ArchiverOption func(*Archiver)

func WithArchiveClock(now func() time.Time) ArchiverOption {
	return func(a *Archiver) { a.now = now }
}

func WithRunIDs(newID func() string) ArchiverOption {
	return func(a *Archiver) { a.newID = newID }
}

// NewArchiver creates an Archiver running each export in one transaction.
func NewArchiver(uow db.UnitOfWork, opts ...ArchiverOption) *Archiver {
	a := &Archiver{
		uow:   uow,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// OpenArchiver opens the archive file at path. Close releases it.
func OpenArchiver(path string, opts ...ArchiverOption) (*Archiver, error) {
	database, err := db.OpenArchive(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}
	a := NewArchiver(db.NewSQLiteUnitOfWork(database), opts...)
	a.close = database.Close
	return a, nil
}

// Close releases a database opened by OpenArchiver.
func (a *Archiver) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

// Archive records one export run and its entries. Either everything is
// written or nothing is.
func (a *Archiver) Archive(ctx context.Context, source string, entries []domain.HistoryEntry) (domain.ExportRun, error) {
	run := domain.ExportRun{
		ID:         a.newID(),
		ExportedAt: a.now(),
		Source:     source,
		Total:      len(entries),
	}

	err := a.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		runs := repository.NewSQLiteExportRunRepo(tx)
		entriesRepo := repository.NewSQLiteHistoryRepo(tx)

		if err := runs.Create(ctx, &run); err != nil {
			return err
		}
		seen := make(map[string]int, len(entries))
		for _, e := range entries {
			occurrence := seen[e.Key()]
			seen[e.Key()]++
			inserted, err := entriesRepo.Append(ctx, run.ID, e, occurrence)
			if err != nil {
				return fmt.Errorf("archiving %s: %w", e.Key(), err)
			}
			if inserted {
				run.Inserted++
			}
		}
		return runs.UpdateCounts(ctx, run.ID, run.Total, run.Inserted)
	})
	if err != nil {
		return domain.ExportRun{}, fmt.Errorf("%w: archive: %w", ErrExport, err)
	}
	return run, nil
}

// Entries returns archived completions oldest first, limited to category
// unless it is empty.
func (a *Archiver) Entries(ctx context.Context, category string) ([]domain.HistoryEntry, error) {
	var out []domain.HistoryEntry
	err := a.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteHistoryRepo(tx)
		var err error
		if category == "" {
			out, err = repo.List(ctx)
		} else {
			out, err = repo.ListByCategory(ctx, category)
		}
		return err
	})
	return out, err
}

// Totals sums archived completions per category.
func (a *Archiver) Totals(ctx context.Context) ([]domain.CategoryTotal, error) {
	var out []domain.CategoryTotal
	err := a.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		out, err = repository.NewSQLiteHistoryRepo(tx).CategoryTotals(ctx)
		return err
	})
	return out, err
}

// Runs lists the recorded export runs.
func (a *Archiver) Runs(ctx context.Context) ([]*domain.ExportRun, error) {
	var out []*domain.ExportRun
	err := a.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		out, err = repository.NewSQLiteExportRunRepo(tx).List(ctx)
		return err
	})
	return out, err
}
