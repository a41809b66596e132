package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and are
// re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS export_runs (
		id          TEXT PRIMARY KEY,
		exported_at TEXT NOT NULL,
		total       INTEGER NOT NULL DEFAULT 0,
		inserted    INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS history_entries (
		seq             INTEGER PRIMARY KEY AUTOINCREMENT,
		timer_id        TEXT NOT NULL,
		name            TEXT NOT NULL,
		category        TEXT NOT NULL,
		duration_sec    INTEGER NOT NULL CHECK(duration_sec > 0),
		completed_at_ms INTEGER NOT NULL,
		occurrence      INTEGER NOT NULL DEFAULT 0,
		export_run_id   TEXT NOT NULL REFERENCES export_runs(id) ON DELETE CASCADE,
		UNIQUE (timer_id, completed_at_ms, occurrence)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_history_category ON history_entries(category)`,
	`CREATE INDEX IF NOT EXISTS idx_history_completed ON history_entries(completed_at_ms)`,

	// Source file name of the run, added after the first archive layout.
	`ALTER TABLE export_runs ADD COLUMN source TEXT NOT NULL DEFAULT ''`,
}
