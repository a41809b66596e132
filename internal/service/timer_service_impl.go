package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/store"
)

type timerService struct {
	store    TimerStore
	observer UseCaseObserver
}

func NewTimerService(s TimerStore, observers ...UseCaseObserver) TimerService {
	return &timerService{
		store:    s,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *timerService) Add(ctx context.Context, name, category string, duration int, halfwayAlert bool) (timer domain.Timer, err error) {
	startedAt := time.Now()
	fields := map[string]any{"category": category, "duration": duration}
	defer func() { observe(ctx, s.observer, "add-timer", startedAt, err, fields) }()

	if err = domain.ValidateTimerInput(name, category, duration); err != nil {
		return domain.Timer{}, err
	}
	timer = s.store.AddTimer(strings.TrimSpace(name), duration, strings.TrimSpace(category), halfwayAlert)
	fields["timer_id"] = timer.ID
	return timer, nil
}

func (s *timerService) Start(ctx context.Context, id string) (store.Snapshot, error) {
	return s.applyTimer(ctx, "start-timer", id, s.store.StartTimer)
}

func (s *timerService) Pause(ctx context.Context, id string) (store.Snapshot, error) {
	return s.applyTimer(ctx, "pause-timer", id, s.store.PauseTimer)
}

func (s *timerService) Reset(ctx context.Context, id string) (store.Snapshot, error) {
	return s.applyTimer(ctx, "reset-timer", id, s.store.ResetTimer)
}

func (s *timerService) Complete(ctx context.Context, id string) (store.Snapshot, error) {
	return s.applyTimer(ctx, "complete-timer", id, s.store.CompleteTimer)
}

func (s *timerService) Remove(ctx context.Context, id string) (store.Snapshot, error) {
	return s.applyTimer(ctx, "remove-timer", id, s.store.RemoveTimer)
}

func (s *timerService) StartCategory(ctx context.Context, category string) (store.Snapshot, error) {
	return s.applyCategory(ctx, "start-category", category, s.store.StartCategoryTimers)
}

func (s *timerService) PauseCategory(ctx context.Context, category string) (store.Snapshot, error) {
	return s.applyCategory(ctx, "pause-category", category, s.store.PauseCategoryTimers)
}

func (s *timerService) ResetCategory(ctx context.Context, category string) (store.Snapshot, error) {
	return s.applyCategory(ctx, "reset-category", category, s.store.ResetCategoryTimers)
}

// applyTimer runs op for an id that must exist. The store treats unknown
// ids as no-ops; the service reports them.
func (s *timerService) applyTimer(ctx context.Context, name, id string, op func(string) store.Snapshot) (snap store.Snapshot, err error) {
	startedAt := time.Now()
	fields := map[string]any{"timer_id": id}
	defer func() { observe(ctx, s.observer, name, startedAt, err, fields) }()

	before, ok := s.store.Snapshot().Timer(id)
	if !ok {
		return s.store.Snapshot(), fmt.Errorf("%s %q: %w", name, id, ErrTimerNotFound)
	}
	snap = op(id)
	fields["from"] = string(before.Status)
	if after, ok := snap.Timer(id); ok {
		fields["to"] = string(after.Status)
	}
	return snap, nil
}

func (s *timerService) applyCategory(ctx context.Context, name, category string, op func(string) store.Snapshot) (snap store.Snapshot, err error) {
	startedAt := time.Now()
	fields := map[string]any{"category": category}
	defer func() { observe(ctx, s.observer, name, startedAt, err, fields) }()

	members := s.store.Snapshot().TimersInCategory(category)
	if len(members) == 0 {
		return s.store.Snapshot(), fmt.Errorf("%s %q: %w", name, category, ErrCategoryNotFound)
	}
	fields["timers"] = len(members)
	return op(category), nil
}
