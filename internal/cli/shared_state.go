package cli

import (
	"context"

	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/store"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Ctx is the program's context. Commands issued by views run under it
	// and stop when the TUI exits.
	Ctx context.Context

	// Latest snapshot seen from the store or from an operation result.
	Snapshot store.Snapshot

	// Categories collapsed in the timer list.
	Collapsed map[string]bool

	// Transient status line.
	Status    string
	StatusErr bool

	// Timers already announced as past halfway.
	alerted map[string]bool

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(ctx context.Context, app *App) *SharedState {
	return &SharedState{
		App:       app,
		Ctx:       ctx,
		Snapshot:  app.Store.Snapshot(),
		Collapsed: make(map[string]bool),
		alerted:   make(map[string]bool),
	}
}

// Apply keeps the newer of the current and the given snapshot and returns
// the timers that passed halfway since the last announcement. Results of
// operations and subscription deliveries can arrive out of order.
func (s *SharedState) Apply(snap store.Snapshot) []domain.Timer {
	if snap.Version < s.Snapshot.Version {
		return nil
	}
	s.Snapshot = snap

	var crossed []domain.Timer
	for _, t := range snap.Timers {
		switch {
		case t.PastHalfway() && !s.alerted[t.ID]:
			s.alerted[t.ID] = true
			crossed = append(crossed, t)
		case t.Status == domain.TimerIdle:
			// A reset timer may alert again.
			delete(s.alerted, t.ID)
		}
	}
	return crossed
}

// SetStatus replaces the status line.
func (s *SharedState) SetStatus(text string, isErr bool) {
	s.Status = text
	s.StatusErr = isErr
}

// ContentHeight returns the height left for view content after the header
// (2 lines) and the status bar (3 lines).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-5, 1)
}
