package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/chrono/internal/store"
	"github.com/alexanderramin/chrono/internal/testutil"
)

type captureObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (c *captureObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureObserver) last() UseCaseEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events[len(c.events)-1]
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	clock := testutil.NewFakeClock()
	s := store.New(store.WithClock(clock.Now), store.WithIDGenerator(testutil.SeqIDs("timer")))
	t.Cleanup(s.Close)
	return s
}
