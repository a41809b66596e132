package domain

import "time"

// ExportRun records one write of the history log into the SQLite archive.
type ExportRun struct {
	ID         string
	ExportedAt time.Time
	Source     string
	Total      int // entries offered
	Inserted   int // entries not already archived
}

// CategoryTotal aggregates archived completions for one category.
type CategoryTotal struct {
	Category     string
	Completions  int
	TotalSeconds int
}
