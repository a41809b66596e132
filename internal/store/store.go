// Package store holds the in-memory timer collection and completion history.
//
// Every operation runs under a single mutex and publishes a fresh Snapshot,
// so callers and subscribers only ever see complete states. Operations on
// unknown ids are silent no-ops.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/google/uuid"
)

// Store is the explicit state container for timers and history. Construct
// one per process (or per test) with New.
type Store struct {
	mu     sync.Mutex
	snap   Snapshot
	now    func() time.Time
	newID  func() string
	subs   map[int]chan Snapshot
	nextID int
	closed bool
	done   chan struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for creation and completion stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides timer id generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
		subs:  make(map[int]chan Snapshot),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Timer returns the current value of one timer.
func (s *Store) Timer(id string) (domain.Timer, bool) {
	return s.Snapshot().Timer(id)
}

// Categories lists categories in order of first appearance.
func (s *Store) Categories() []string {
	return s.Snapshot().Categories()
}

// TimersInCategory returns the timers in category.
func (s *Store) TimersInCategory(category string) []domain.Timer {
	return s.Snapshot().TimersInCategory(category)
}

// History returns the completion log in order of completion.
func (s *Store) History() []domain.HistoryEntry {
	return s.Snapshot().History
}

// AddTimer appends a new idle timer. Inputs are not validated here; callers
// enforce a non-empty name and category and a positive duration.
func (s *Store) AddTimer(name string, duration int, category string, halfwayAlert bool) domain.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := domain.NewTimer(s.newID(), name, category, duration, halfwayAlert, s.now())
	timers := append(slices.Clip(s.snap.Timers), t)
	s.publishLocked(timers, s.snap.History)
	return t
}

// RemoveTimer drops a timer from the collection. Its history entries stay.
func (s *Store) RemoveTimer(id string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.snap.Timers, func(t domain.Timer) bool { return t.ID == id })
	if idx < 0 {
		return s.snap
	}
	timers := slices.Delete(slices.Clone(s.snap.Timers), idx, idx+1)
	s.publishLocked(timers, s.snap.History)
	return s.snap
}

// StartTimer starts an idle or paused timer.
func (s *Store) StartTimer(id string) Snapshot {
	return s.transform(byID(id), domain.Timer.Start)
}

// PauseTimer pauses a running timer.
func (s *Store) PauseTimer(id string) Snapshot {
	return s.transform(byID(id), domain.Timer.Pause)
}

// ResetTimer returns a timer to idle with its full duration.
func (s *Store) ResetTimer(id string) Snapshot {
	return s.transform(byID(id), domain.Timer.Reset)
}

// StartCategoryTimers starts every non-completed timer in category.
func (s *Store) StartCategoryTimers(category string) Snapshot {
	return s.transform(byCategory(category), domain.Timer.Start)
}

// PauseCategoryTimers pauses every running timer in category.
func (s *Store) PauseCategoryTimers(category string) Snapshot {
	return s.transform(byCategory(category), domain.Timer.Pause)
}

// ResetCategoryTimers resets every timer in category, completed ones
// included. History is left alone, so a timer that completes again after
// this reset is recorded twice under the same id.
func (s *Store) ResetCategoryTimers(category string) Snapshot {
	return s.transform(byCategory(category), domain.Timer.Reset)
}

// UpdateTimer applies exactly one tick. When the tick completes the timer,
// the history entry is appended in the same update.
func (s *Store) UpdateTimer(id string) Snapshot {
	return s.record(id, domain.Timer.Tick)
}

// CompleteTimer forces a timer into the completed state and records it.
func (s *Store) CompleteTimer(id string) Snapshot {
	return s.record(id, domain.Timer.Complete)
}

func byID(id string) func(domain.Timer) bool {
	return func(t domain.Timer) bool { return t.ID == id }
}

func byCategory(category string) func(domain.Timer) bool {
	return func(t domain.Timer) bool { return t.Category == category }
}

// transform replaces every matching timer for which fn reports a change.
// The previous snapshot's slice is never written.
func (s *Store) transform(match func(domain.Timer) bool, fn func(domain.Timer) (domain.Timer, bool)) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next []domain.Timer
	for i, t := range s.snap.Timers {
		if !match(t) {
			continue
		}
		updated, changed := fn(t)
		if !changed {
			continue
		}
		if next == nil {
			next = slices.Clone(s.snap.Timers)
		}
		next[i] = updated
	}
	if next == nil {
		return s.snap
	}
	s.publishLocked(next, s.snap.History)
	return s.snap
}

func (s *Store) record(id string, fn func(domain.Timer, time.Time) (domain.Timer, *domain.HistoryEntry, bool)) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.snap.Timers, func(t domain.Timer) bool { return t.ID == id })
	if idx < 0 {
		return s.snap
	}
	updated, entry, changed := fn(s.snap.Timers[idx], s.now())
	if !changed {
		return s.snap
	}

	timers := slices.Clone(s.snap.Timers)
	timers[idx] = updated
	history := s.snap.History
	if entry != nil {
		history = append(slices.Clip(history), *entry)
	}
	s.publishLocked(timers, history)
	return s.snap
}

func (s *Store) publishLocked(timers []domain.Timer, history []domain.HistoryEntry) {
	s.snap = Snapshot{
		Timers:  timers,
		History: history,
		Version: s.snap.Version + 1,
	}
	for _, ch := range s.subs {
		offerLatest(ch, s.snap)
	}
}

// offerLatest delivers snap without blocking, replacing an undelivered
// older snapshot so the subscriber always ends on the newest state.
func offerLatest(ch chan Snapshot, snap Snapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}

// Subscribe returns a channel that receives the current snapshot right away
// and then the latest snapshot after each change. Intermediate snapshots may
// be skipped. The channel is closed when ctx ends or the store is closed.
func (s *Store) Subscribe(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	ch <- s.snap
	s.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-s.done:
		}
		s.unsubscribe(id)
	}()
	return ch
}

func (s *Store) unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(ch)
	}
}

// Close closes every subscription. Operations keep working afterwards but
// no longer notify anyone.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}
