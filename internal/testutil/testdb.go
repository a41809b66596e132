package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/chrono/internal/db"
)

// NewTestArchive opens a migrated archive in the test's temp dir and closes
// it when the test completes.
func NewTestArchive(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenArchive(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("failed to open test archive: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given archive.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// InsertExportRun seeds an export_runs row so history rows can reference it.
func InsertExportRun(t *testing.T, database db.DBTX, id string) {
	t.Helper()
	_, err := database.ExecContext(t.Context(),
		`INSERT INTO export_runs (id, exported_at, source) VALUES (?, ?, 'test')`,
		id, TestNow.Format("2006-01-02T15:04:05Z07:00"))
	if err != nil {
		t.Fatalf("seeding export run %s: %v", id, err)
	}
}
