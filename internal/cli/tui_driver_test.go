package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/decalage/internal/teatest"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver seeds the bundled tables, constructs the appModel, sets the
// terminal size and drains Init (which loads the day table synchronously).
func NewTestDriver(t *testing.T, a *App) *TestDriver {
	t.Helper()

	_, err := loadCatalog(context.Background(), a, "")
	require.NoError(t, err)

	m := newAppModel(context.Background(), a)
	d := teatest.New(t, m, teatest.WithSize(100, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// State returns the calculator state for inspection.
func (d *TestDriver) State() *CalcState {
	return d.appModel().state
}

// Select sets the four selections directly, bypassing the form widgets.
func (d *TestDriver) Select(startDay, startHour, endDay, endHour string) {
	req := &d.State().Request
	req.StartDay, req.StartHour = startDay, startHour
	req.EndDay, req.EndHour = endDay, endHour
}

// Submit runs a calculation as if the Calculate button had been pressed.
func (d *TestDriver) Submit() {
	d.T.Helper()
	d.Send(submitMsg{})
}

// IsQuitting reports whether the model or the driver saw a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// Screen returns the rendered view with ANSI sequences removed.
func (d *TestDriver) Screen() string {
	return stripANSI(d.View())
}
