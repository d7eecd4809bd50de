package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/moodwheel/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sets a terminal size and
// drains Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	return NewSizedTestDriver(t, app, 100, 30)
}

// NewSizedTestDriver is NewTestDriver with an explicit terminal size.
func NewSizedTestDriver(t *testing.T, app *App, width, height int) *TestDriver {
	t.Helper()

	m := newAppModel(context.Background(), app)
	d := teatest.New(t, m, teatest.WithSize(width, height))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
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

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Notice returns the transient notice line.
func (d *TestDriver) Notice() string {
	return stripANSI(d.appModel().notice)
}
