package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/chrono/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the app model without a store subscription, so
// every state change in a test comes from an action result or an explicit
// snapshotMsg.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	return NewTestDriverContext(t, context.Background(), app)
}

// NewTestDriverContext is NewTestDriver with the program context set to ctx.
func NewTestDriverContext(t *testing.T, ctx context.Context, app *App) *TestDriver {
	t.Helper()
	d := teatest.New(t, newAppModel(ctx, app, nil), teatest.WithSize(120, 40))
	d.Start()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Status returns the status line text.
func (d *TestDriver) Status() string {
	return d.State().Status
}

// Cursor returns the timer list cursor. It fails the test if the timer list
// is not on the stack.
func (d *TestDriver) Cursor() int {
	d.T.Helper()
	list, ok := d.appModel().viewStack[0].(*timerListView)
	if !ok {
		d.T.Fatalf("bottom view is %T, want *timerListView", d.appModel().viewStack[0])
	}
	return list.cursor
}
