package store

import "github.com/alexanderramin/chrono/internal/domain"

// Snapshot is an immutable view of the store at one version. Its slices are
// never written to after publication; later operations allocate new ones.
type Snapshot struct {
	Timers  []domain.Timer
	History []domain.HistoryEntry
	Version uint64
}

// Timer looks up a timer by id.
func (s Snapshot) Timer(id string) (domain.Timer, bool) {
	for _, t := range s.Timers {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Timer{}, false
}

// Categories lists distinct categories in order of first appearance.
func (s Snapshot) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range s.Timers {
		if seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		out = append(out, t.Category)
	}
	return out
}

// TimersInCategory returns the timers whose category matches exactly.
func (s Snapshot) TimersInCategory(category string) []domain.Timer {
	var out []domain.Timer
	for _, t := range s.Timers {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Running returns the timers currently counting down.
func (s Snapshot) Running() []domain.Timer {
	var out []domain.Timer
	for _, t := range s.Timers {
		if t.Status == domain.TimerRunning {
			out = append(out, t)
		}
	}
	return out
}

// AllCompleted reports whether there is at least one timer and every timer
// has completed.
func (s Snapshot) AllCompleted() bool {
	if len(s.Timers) == 0 {
		return false
	}
	for _, t := range s.Timers {
		if t.Status != domain.TimerCompleted {
			return false
		}
	}
	return true
}
