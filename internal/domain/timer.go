package domain

import "time"

// Timer is a single countdown instance. Values are treated as immutable:
// transitions return a new Timer instead of mutating the receiver.
type Timer struct {
	ID            string
	Name          string
	Category      string
	Duration      int // total seconds, never changes after creation
	RemainingTime int
	Status        TimerStatus
	HalfwayAlert  bool
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

// NewTimer builds an idle timer with a full remaining time.
func NewTimer(id, name, category string, duration int, halfwayAlert bool, now time.Time) Timer {
	return Timer{
		ID:            id,
		Name:          name,
		Category:      category,
		Duration:      duration,
		RemainingTime: duration,
		Status:        TimerIdle,
		HalfwayAlert:  halfwayAlert,
		CreatedAt:     now,
	}
}

// IsTerminal reports whether the timer has completed. Only Reset leaves
// the completed state.
func (t Timer) IsTerminal() bool {
	return t.Status == TimerCompleted
}

// Start moves an idle or paused timer to running.
func (t Timer) Start() (Timer, bool) {
	if t.Status != TimerIdle && t.Status != TimerPaused {
		return t, false
	}
	t.Status = TimerRunning
	return t, true
}

// Pause freezes a running timer.
func (t Timer) Pause() (Timer, bool) {
	if t.Status != TimerRunning {
		return t, false
	}
	t.Status = TimerPaused
	return t, true
}

// Reset returns the timer to idle with its full duration, from any state.
func (t Timer) Reset() (Timer, bool) {
	next := t
	next.Status = TimerIdle
	next.RemainingTime = t.Duration
	next.CompletedAt = nil
	changed := t.Status != TimerIdle || t.RemainingTime != t.Duration || t.CompletedAt != nil
	return next, changed
}

// Tick applies one second of countdown. The tick that would bring the
// remaining time to zero completes the timer and yields the history entry
// to record.
func (t Timer) Tick(now time.Time) (Timer, *HistoryEntry, bool) {
	if t.Status != TimerRunning || t.RemainingTime <= 0 {
		return t, nil, false
	}
	if t.RemainingTime > 1 {
		t.RemainingTime--
		return t, nil, true
	}
	return t.complete(now)
}

// Complete forces the timer into the completed state regardless of the
// time left on it.
func (t Timer) Complete(now time.Time) (Timer, *HistoryEntry, bool) {
	if t.Status == TimerCompleted {
		return t, nil, false
	}
	return t.complete(now)
}

func (t Timer) complete(now time.Time) (Timer, *HistoryEntry, bool) {
	completedAt := now
	t.Status = TimerCompleted
	t.RemainingTime = 0
	t.CompletedAt = &completedAt
	entry := NewHistoryEntry(t, now)
	return t, &entry, true
}

// Progress returns the elapsed fraction of the duration in [0, 1].
func (t Timer) Progress() float64 {
	if t.Duration <= 0 {
		return 0
	}
	p := float64(t.Duration-t.RemainingTime) / float64(t.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// PastHalfway reports whether a timer that asked for a halfway alert has
// used up at least half of its duration and is still counting.
func (t Timer) PastHalfway() bool {
	if !t.HalfwayAlert || t.Status == TimerCompleted || t.Status == TimerIdle {
		return false
	}
	return t.RemainingTime*2 <= t.Duration
}

// CheckInvariants returns a descriptive error when the timer is in a state
// the state machine can never produce.
func (t Timer) CheckInvariants() error {
	switch {
	case t.RemainingTime < 0 || t.RemainingTime > t.Duration:
		return invariantError(t, "remaining time %d outside [0, %d]", t.RemainingTime, t.Duration)
	case t.Status == TimerIdle && t.RemainingTime != t.Duration:
		return invariantError(t, "idle with remaining %d of %d", t.RemainingTime, t.Duration)
	case t.Status == TimerCompleted && t.RemainingTime != 0:
		return invariantError(t, "completed with remaining %d", t.RemainingTime)
	case t.Status != TimerCompleted && t.RemainingTime == 0:
		return invariantError(t, "%s with no remaining time", t.Status)
	case t.Status == TimerCompleted && t.CompletedAt == nil:
		return invariantError(t, "completed without completion time")
	}
	return nil
}
