// Package history exports the completed-timer log: a JSON file handed to a
// share target, and an optional SQLite archive.
package history

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
)

// FileName is the name of the exported history file.
const FileName = "timer-history.json"

// entryJSON is the export schema. completedAt is epoch milliseconds.
type entryJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Duration    int    `json:"duration"`
	CompletedAt int64  `json:"completedAt"`
}

// Marshal renders entries as a two-space indented JSON array. An empty log
// is "[]", never "null".
func Marshal(entries []domain.HistoryEntry) ([]byte, error) {
	out := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryJSON{
			ID:          e.ID,
			Name:        e.Name,
			Category:    e.Category,
			Duration:    e.Duration,
			CompletedAt: e.CompletedAt.UnixMilli(),
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding history: %w", err)
	}
	return data, nil
}

// Encode writes Marshal's output to w.
func Encode(w io.Writer, entries []domain.HistoryEntry) error {
	data, err := Marshal(entries)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// Decode reads an exported history file. Completion times come back in UTC
// at millisecond precision.
func Decode(r io.Reader) ([]domain.HistoryEntry, error) {
	var in []entryJSON
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decoding history: %w", err)
	}
	entries := make([]domain.HistoryEntry, 0, len(in))
	for i, e := range in {
		if e.ID == "" || e.Duration <= 0 {
			return nil, fmt.Errorf("decoding history entry %d: missing id or duration", i)
		}
		entries = append(entries, domain.HistoryEntry{
			ID:          e.ID,
			Name:        e.Name,
			Category:    e.Category,
			Duration:    e.Duration,
			CompletedAt: time.UnixMilli(e.CompletedAt).UTC(),
		})
	}
	return entries, nil
}
