package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/chrono/internal/db"
	"github.com/alexanderramin/chrono/internal/domain"
)

// SQLiteHistoryRepo implements HistoryArchiveRepo on the archive database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a repo over a database or an open transaction.
func NewSQLiteHistoryRepo(db db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: db}
}

func (r *SQLiteHistoryRepo) Append(ctx context.Context, runID string, e domain.HistoryEntry, occurrence int) (bool, error) {
	query := `INSERT OR IGNORE INTO history_entries
		(timer_id, name, category, duration_sec, completed_at_ms, occurrence, export_run_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		e.Category,
		e.Duration,
		toMillis(e.CompletedAt),
		occurrence,
		runID,
	)
	if err != nil {
		return false, fmt.Errorf("inserting history entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading inserted rows: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteHistoryRepo) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	query := `SELECT timer_id, name, category, duration_sec, completed_at_ms
		FROM history_entries ORDER BY completed_at_ms, seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *SQLiteHistoryRepo) ListByCategory(ctx context.Context, category string) ([]domain.HistoryEntry, error) {
	query := `SELECT timer_id, name, category, duration_sec, completed_at_ms
		FROM history_entries WHERE category = ? ORDER BY completed_at_ms, seq`
	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("listing history by category: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *SQLiteHistoryRepo) CategoryTotals(ctx context.Context) ([]domain.CategoryTotal, error) {
	query := `SELECT category, COUNT(*), SUM(duration_sec)
		FROM history_entries GROUP BY category ORDER BY SUM(duration_sec) DESC, category`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("summing history by category: %w", err)
	}
	defer rows.Close()

	var totals []domain.CategoryTotal
	for rows.Next() {
		var ct domain.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Completions, &ct.TotalSeconds); err != nil {
			return nil, fmt.Errorf("scanning category total: %w", err)
		}
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category totals: %w", err)
	}
	return totals, nil
}

func scanEntries(rows *sql.Rows) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		var completedMs int64
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Duration, &completedMs); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.CompletedAt = fromMillis(completedMs)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return entries, nil
}
