package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/chrono/internal/db"
	"github.com/alexanderramin/chrono/internal/domain"
)

// SQLiteExportRunRepo implements ExportRunRepo.
type SQLiteExportRunRepo struct {
	db db.DBTX
}

func NewSQLiteExportRunRepo(db db.DBTX) *SQLiteExportRunRepo {
	return &SQLiteExportRunRepo{db: db}
}

func (r *SQLiteExportRunRepo) Create(ctx context.Context, run *domain.ExportRun) error {
	query := `INSERT INTO export_runs (id, exported_at, source, total, inserted) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		formatTime(run.ExportedAt),
		run.Source,
		run.Total,
		run.Inserted,
	)
	if err != nil {
		return fmt.Errorf("inserting export run: %w", err)
	}
	return nil
}

func (r *SQLiteExportRunRepo) UpdateCounts(ctx context.Context, id string, total, inserted int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE export_runs SET total = ?, inserted = ? WHERE id = ?`, total, inserted, id)
	if err != nil {
		return fmt.Errorf("updating export run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading updated rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("export run %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteExportRunRepo) GetByID(ctx context.Context, id string) (*domain.ExportRun, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, exported_at, source, total, inserted FROM export_runs WHERE id = ?`, id)

	var run domain.ExportRun
	var exportedAt string
	if err := row.Scan(&run.ID, &exportedAt, &run.Source, &run.Total, &run.Inserted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("export run: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning export run: %w", err)
	}
	t, err := parseTime(exportedAt, "exported_at")
	if err != nil {
		return nil, err
	}
	run.ExportedAt = t
	return &run, nil
}

func (r *SQLiteExportRunRepo) List(ctx context.Context) ([]*domain.ExportRun, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, exported_at, source, total, inserted FROM export_runs ORDER BY exported_at`)
	if err != nil {
		return nil, fmt.Errorf("listing export runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.ExportRun
	for rows.Next() {
		var run domain.ExportRun
		var exportedAt string
		if err := rows.Scan(&run.ID, &exportedAt, &run.Source, &run.Total, &run.Inserted); err != nil {
			return nil, fmt.Errorf("scanning export run row: %w", err)
		}
		t, err := parseTime(exportedAt, "exported_at")
		if err != nil {
			return nil, err
		}
		run.ExportedAt = t
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating export runs: %w", err)
	}
	return runs, nil
}
