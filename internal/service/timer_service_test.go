package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerService_Add(t *testing.T) {
	obs := &captureObserver{}
	svc := NewTimerService(newTestStore(t), obs)

	timer, err := svc.Add(context.Background(), "  Tea ", " Kitchen", 180, true)
	require.NoError(t, err)
	assert.Equal(t, "timer-1", timer.ID)
	assert.Equal(t, "Tea", timer.Name)
	assert.Equal(t, "Kitchen", timer.Category)
	assert.Equal(t, domain.TimerIdle, timer.Status)
	assert.True(t, timer.HalfwayAlert)

	ev := obs.last()
	assert.Equal(t, "add-timer", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "timer-1", ev.Fields["timer_id"])
}

func TestTimerService_AddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		timer    string
		category string
		duration int
	}{
		{"blank name", "  ", "Kitchen", 10},
		{"blank category", "Tea", "", 10},
		{"zero duration", "Tea", "Kitchen", 0},
		{"negative duration", "Tea", "Kitchen", -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			obs := &captureObserver{}
			svc := NewTimerService(s, obs)

			_, err := svc.Add(context.Background(), tt.timer, tt.category, tt.duration, false)
			require.ErrorIs(t, err, domain.ErrInvalidTimer)
			assert.Empty(t, s.Snapshot().Timers, "invalid input never reaches the store")
			assert.False(t, obs.last().Success)
		})
	}
}

func TestTimerService_Lifecycle(t *testing.T) {
	s := newTestStore(t)
	svc := NewTimerService(s)
	ctx := context.Background()

	timer, err := svc.Add(ctx, "Tea", "Kitchen", 3, false)
	require.NoError(t, err)

	snap, err := svc.Start(ctx, timer.ID)
	require.NoError(t, err)
	got, _ := snap.Timer(timer.ID)
	assert.Equal(t, domain.TimerRunning, got.Status)

	snap, err = svc.Pause(ctx, timer.ID)
	require.NoError(t, err)
	got, _ = snap.Timer(timer.ID)
	assert.Equal(t, domain.TimerPaused, got.Status)

	snap, err = svc.Complete(ctx, timer.ID)
	require.NoError(t, err)
	got, _ = snap.Timer(timer.ID)
	assert.Equal(t, domain.TimerCompleted, got.Status)
	assert.Len(t, snap.History, 1)

	snap, err = svc.Reset(ctx, timer.ID)
	require.NoError(t, err)
	got, _ = snap.Timer(timer.ID)
	assert.Equal(t, domain.TimerIdle, got.Status)
	assert.Equal(t, 3, got.RemainingTime)

	snap, err = svc.Remove(ctx, timer.ID)
	require.NoError(t, err)
	assert.Empty(t, snap.Timers)
	assert.Len(t, snap.History, 1)
}

func TestTimerService_UnknownTimer(t *testing.T) {
	s := newTestStore(t)
	obs := &captureObserver{}
	svc := NewTimerService(s, obs)
	ctx := context.Background()
	_, err := svc.Add(ctx, "Tea", "Kitchen", 3, false)
	require.NoError(t, err)
	before := s.Snapshot()

	_, err = svc.Start(ctx, "missing")
	require.ErrorIs(t, err, ErrTimerNotFound)
	assert.Equal(t, before.Version, s.Snapshot().Version)

	ev := obs.last()
	assert.Equal(t, "start-timer", ev.Name)
	assert.False(t, ev.Success)
	assert.ErrorIs(t, ev.Err, ErrTimerNotFound)
}

func TestTimerService_CategoryOperations(t *testing.T) {
	s := newTestStore(t)
	obs := &captureObserver{}
	svc := NewTimerService(s, obs)
	ctx := context.Background()

	a, _ := svc.Add(ctx, "Plank", "Workout", 60, false)
	b, _ := svc.Add(ctx, "Squats", "Workout", 90, false)
	tea, _ := svc.Add(ctx, "Tea", "Kitchen", 180, false)

	snap, err := svc.StartCategory(ctx, "Workout")
	require.NoError(t, err)
	assert.Len(t, snap.Running(), 2)
	assert.Equal(t, 2, obs.last().Fields["timers"])

	snap, err = svc.PauseCategory(ctx, "Workout")
	require.NoError(t, err)
	for _, id := range []string{a.ID, b.ID} {
		got, _ := snap.Timer(id)
		assert.Equal(t, domain.TimerPaused, got.Status)
	}
	got, _ := snap.Timer(tea.ID)
	assert.Equal(t, domain.TimerIdle, got.Status)

	_, err = svc.ResetCategory(ctx, "Workout")
	require.NoError(t, err)

	_, err = svc.StartCategory(ctx, "workout")
	assert.ErrorIs(t, err, ErrCategoryNotFound, "category match is exact")
}
