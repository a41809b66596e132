package testutil

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
)

// TestNow is the fixed instant used by fixtures and FakeClock defaults.
var TestNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

var testTimerCounter atomic.Int64

// Timer options
type TimerOption func(*domain.Timer)

func WithCategory(category string) TimerOption {
	return func(t *domain.Timer) {
		t.Category = category
	}
}

// WithDuration sets the duration and refills the remaining time.
func WithDuration(seconds int) TimerOption {
	return func(t *domain.Timer) {
		t.Duration = seconds
		t.RemainingTime = seconds
	}
}

func WithRemaining(seconds int) TimerOption {
	return func(t *domain.Timer) {
		t.RemainingTime = seconds
	}
}

func WithHalfwayAlert() TimerOption {
	return func(t *domain.Timer) {
		t.HalfwayAlert = true
	}
}

// WithStatus sets the status and keeps the invariants: completed timers get
// zero remaining time and a completion stamp.
func WithStatus(s domain.TimerStatus) TimerOption {
	return func(t *domain.Timer) {
		t.Status = s
		switch s {
		case domain.TimerCompleted:
			at := TestNow
			t.RemainingTime = 0
			t.CompletedAt = &at
		case domain.TimerIdle:
			t.RemainingTime = t.Duration
		}
	}
}

// NewTestTimer builds an idle 60s timer in category "General".
func NewTestTimer(name string, opts ...TimerOption) domain.Timer {
	n := testTimerCounter.Add(1)
	t := domain.NewTimer(fmt.Sprintf("timer-%03d", n), name, "General", 60, false, TestNow)
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTestHistoryEntry builds an entry completed offset after TestNow,
// truncated to milliseconds so it survives the export format.
func NewTestHistoryEntry(id, name, category string, duration int, offset time.Duration) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:          id,
		Name:        name,
		Category:    category,
		Duration:    duration,
		CompletedAt: TestNow.Add(offset).Truncate(time.Millisecond),
	}
}

// FakeClock is a manually advanced time source safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock starts at TestNow.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: TestNow}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// SeqIDs returns a generator yielding prefix-1, prefix-2, ...
func SeqIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
