package domain

import (
	"fmt"
	"time"
)

// HistoryEntry is the immutable record appended when a timer completes.
// IDs repeat when a completed timer is reset and completed again.
type HistoryEntry struct {
	ID          string
	Name        string
	Category    string
	Duration    int
	CompletedAt time.Time
}

// NewHistoryEntry snapshots the identifying fields of t.
func NewHistoryEntry(t Timer, completedAt time.Time) HistoryEntry {
	return HistoryEntry{
		ID:          t.ID,
		Name:        t.Name,
		Category:    t.Category,
		Duration:    t.Duration,
		CompletedAt: completedAt,
	}
}

// Key distinguishes entries that share a timer id.
func (h HistoryEntry) Key() string {
	return fmt.Sprintf("%s-%d", h.ID, h.CompletedAt.UnixMilli())
}
