// Package ticker drives running timers: one cancellable repeating task per
// running timer id, each calling Store.UpdateTimer once per interval.
package ticker

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/alexanderramin/chrono/internal/domain"
	"github.com/alexanderramin/chrono/internal/store"
)

// DefaultTickInterval is one countdown second.
const DefaultTickInterval = time.Second

// Updater is the store operation a task invokes on every tick.
type Updater interface {
	UpdateTimer(id string) store.Snapshot
}

// Source provides snapshots for Run to reconcile against.
type Source interface {
	Updater
	Subscribe(ctx context.Context) <-chan store.Snapshot
}

// Config contains runtime options for the Driver.
type Config struct {
	TickInterval time.Duration
	Logger       *slog.Logger
}

// Driver owns the per-timer tasks. It never mutates timers itself.
type Driver struct {
	mu     sync.Mutex
	store  Source
	cfg    Config
	tasks  map[string]context.CancelFunc
	wg     sync.WaitGroup
	closed bool
}

// NewDriver creates a Driver for s.
func NewDriver(s Source, cfg Config) *Driver {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Driver{
		store: s,
		cfg:   cfg,
		tasks: make(map[string]context.CancelFunc),
	}
}

// Run reconciles tasks against every snapshot the store publishes until ctx
// ends or the store closes its subscriptions, then cancels all tasks.
func (d *Driver) Run(ctx context.Context) {
	defer d.Close()
	for snap := range d.store.Subscribe(ctx) {
		d.Reconcile(snap)
	}
}

// Reconcile starts a task for every running timer that lacks one and
// cancels tasks whose timer stopped running or disappeared.
func (d *Driver) Reconcile(snap store.Snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	running := make(map[string]bool)
	for _, t := range snap.Timers {
		if t.Status == domain.TimerRunning {
			running[t.ID] = true
		}
	}

	for id, cancel := range d.tasks {
		if running[id] {
			continue
		}
		cancel()
		delete(d.tasks, id)
		d.cfg.Logger.Debug("tick task stopped", "timer_id", id)
	}

	for id := range running {
		if _, ok := d.tasks[id]; ok {
			continue
		}
		d.startLocked(id)
	}
}

func (d *Driver) startLocked(id string) {
	ctx, cancel := context.WithCancel(context.Background())
	d.tasks[id] = cancel
	d.wg.Add(1)
	d.cfg.Logger.Debug("tick task started", "timer_id", id, "interval", d.cfg.TickInterval)

	go func() {
		defer d.wg.Done()
		d.loop(ctx, id)
	}()
}

// loop schedules each tick from the previous one without compensating for
// drift.
func (d *Driver) loop(ctx context.Context, id string) {
	t := time.NewTicker(d.cfg.TickInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if ctx.Err() != nil {
				return
			}
			d.store.UpdateTimer(id)
		}
	}
}

// Active returns the ids with a live task, sorted.
func (d *Driver) Active() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := make([]string, 0, len(d.tasks))
	for id := range d.tasks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Close cancels every task and waits for them to exit. Later Reconcile
// calls are ignored.
func (d *Driver) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for id, cancel := range d.tasks {
			cancel()
			delete(d.tasks, id)
		}
	}
	d.mu.Unlock()
	d.wg.Wait()
}
