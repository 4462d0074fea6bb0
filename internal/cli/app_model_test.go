package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/decalage/internal/app"
	"github.com/alexanderramin/decalage/internal/domain"
	"github.com/alexanderramin/decalage/internal/importer"
	"github.com/alexanderramin/decalage/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppModel_InitLoadsDaysAndBuildsForm(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	m := d.appModel()
	require.NotNil(t, m.form)
	require.Len(t, m.days, 7)
	assert.Equal(t, "Mon", m.days[0].Label)

	screen := d.Screen()
	assert.Contains(t, screen, appTitle)
	assert.Contains(t, screen, "Start day")
	assert.Contains(t, screen, startDayPlaceholder)
	assert.NotContains(t, screen, "Missed Graph")
}

func TestAppModel_DefaultSelections(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	req := d.State().Request
	assert.Empty(t, req.StartDay)
	assert.Empty(t, req.EndDay)
	assert.Equal(t, domain.DefaultStartHour, req.StartHour)
	assert.Equal(t, domain.DefaultEndHour, req.EndHour)
}

func TestAppModel_SubmitShowsResult(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Select("Mon", "09:00", "Mon", "23:59")
	d.Submit()

	st := d.State()
	require.NotNil(t, st.Result)
	assert.Equal(t, 7, st.Result.GraphHours)
	assert.Equal(t, 0, st.Result.RushHours)
	assert.False(t, st.HasAlert())

	screen := d.Screen()
	assert.Contains(t, screen, "Missed Graph: 7 hours")
	assert.Contains(t, screen, "Missed Rush: 0 hours")
	assert.NotNil(t, d.appModel().form, "form is rebuilt after a calculation")
}

func TestAppModel_MissingDayRaisesAlert(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Select("", "09:00", "Mon", "23:59")
	d.Submit()

	st := d.State()
	assert.Equal(t, app.MissingDayMessage, st.Alert)
	assert.Nil(t, st.Result)

	screen := d.Screen()
	assert.Contains(t, screen, app.MissingDayMessage)
	assert.NotContains(t, screen, "Missed Graph")
	assert.NotContains(t, screen, "Start day")
}

func TestAppModel_AlertBlocksUntilDismissed(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Submit()
	require.True(t, d.State().HasAlert())

	d.PressKey('x')
	d.PressDown()
	assert.True(t, d.State().HasAlert())

	d.PressEnter()
	assert.False(t, d.State().HasAlert())
	assert.Contains(t, d.Screen(), "Start day")
}

func TestAppModel_EscDismissesAlert(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Submit()
	require.True(t, d.State().HasAlert())

	d.PressEsc()
	assert.False(t, d.State().HasAlert())
}

func TestAppModel_ErrorKeepsPriorResult(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Select("Tue", "19:00", "Tue", "23:59")
	d.Submit()
	require.NotNil(t, d.State().Result)
	prior := d.State().Result

	d.Select("Tue", "09:00", "", "23:59")
	d.Submit()

	assert.True(t, d.State().HasAlert())
	assert.Same(t, prior, d.State().Result)
	assert.Equal(t, 2, d.State().Result.RushHours)

	d.PressEnter()
	assert.Contains(t, d.Screen(), "Missed Rush: 2 hours")
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
	assert.Empty(t, d.View())
}

func TestAppModel_CtrlCQuitsDuringAlert(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Submit()
	require.True(t, d.State().HasAlert())

	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

func TestAppModel_StatusBarHints(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	assert.Contains(t, d.Screen(), "enter: select")

	d.Submit()
	assert.Contains(t, d.Screen(), "enter: dismiss")
}

func TestAppModel_WindowResize(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Send(tea.WindowSizeMsg{Width: 60, Height: 20})

	assert.Equal(t, 60, d.appModel().width)
	assert.Equal(t, 20, d.appModel().height)
}

// failingCatalog returns an error from every call.
type failingCatalog struct{ err error }

func (c failingCatalog) ListDays(context.Context) ([]*domain.DaySlot, error) { return nil, c.err }
func (c failingCatalog) ListSessions(context.Context) ([]*domain.Session, error) {
	return nil, c.err
}
func (c failingCatalog) ListSessionsByType(context.Context, domain.SessionType) ([]*domain.Session, error) {
	return nil, c.err
}
func (c failingCatalog) LoadTables(context.Context, *importer.Tables) (*app.LoadResult, error) {
	return nil, c.err
}

func TestAppModel_DayLoadFailure(t *testing.T) {
	a := testApp(t)
	a.Catalog = failingCatalog{err: errors.New("catalog offline")}

	m := newAppModel(context.Background(), a)
	d := teatest.New(t, m, teatest.WithSize(100, 40))
	d.DrainInit()

	screen := stripANSI(d.View())
	assert.Contains(t, screen, "catalog offline")
	assert.Nil(t, d.Model.(appModel).form)
}

func TestCalcState_Apply(t *testing.T) {
	st := newCalcState()
	resp := &app.CalculateResponse{GraphHours: 3}

	st.Apply(resp, nil)
	assert.Same(t, resp, st.Result)
	assert.False(t, st.HasAlert())

	st.Apply(nil, &app.CalcError{Code: app.CalcErrMissingDay, Message: app.MissingDayMessage})
	assert.Equal(t, app.MissingDayMessage, st.Alert)
	assert.Same(t, resp, st.Result)

	st.Apply(nil, errors.New("disk on fire"))
	assert.Equal(t, "disk on fire", st.Alert)

	st.DismissAlert()
	assert.False(t, st.HasAlert())
}

func TestDayOptions_PlaceholderFirst(t *testing.T) {
	days := []*domain.DaySlot{{Label: "Mon"}, {Label: "Tue"}}
	opts := dayOptions(endDayPlaceholder, days)

	require.Len(t, opts, 3)
	assert.Equal(t, endDayPlaceholder, opts[0].Key)
	assert.Empty(t, opts[0].Value)
	assert.Equal(t, "Tue", opts[2].Value)
}

func TestHourOptions_MatchDomain(t *testing.T) {
	opts := hourOptions()
	require.Len(t, opts, 16)
	assert.Equal(t, "09:00", opts[0].Value)
	assert.Equal(t, domain.EndOfDay, opts[15].Key)
}

// ── form-driven flows ────────────────────────────────────────────────────────

func TestAppModel_FormCalculateByKeys(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressDown() // start day: Mon
	d.PressEnter()
	d.PressEnter() // start hour: 09:00
	d.PressDown()  // end day: Mon
	d.PressEnter()
	d.PressEnter() // end hour: 23:59
	d.PressEnter() // Calculate

	st := d.State()
	require.False(t, st.HasAlert(), st.Alert)
	require.NotNil(t, st.Result)
	assert.Equal(t, 420, st.Result.Totals.GraphMinutes)
	assert.Equal(t, 7, st.Result.GraphHours)
	assert.Equal(t, "Mon", st.Request.StartDay)
	assert.Equal(t, "Mon", st.Request.EndDay)
	assert.Contains(t, d.Screen(), "Missed Graph: 7 hours")
}

func TestAppModel_FormPlaceholderDaysRaiseAlert(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	for range 5 {
		d.PressEnter()
	}

	st := d.State()
	assert.Equal(t, app.MissingDayMessage, st.Alert)
	assert.Nil(t, st.Result)
	assert.Contains(t, d.Screen(), app.MissingDayMessage)
}

func TestAppModel_FormResetClearsSelections(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressDown()
	d.PressEnter()
	d.PressEnter()
	d.PressDown()
	d.PressEnter()
	d.PressEnter()
	require.Equal(t, "Mon", d.State().Request.StartDay)

	d.Press(tea.KeyRight) // Reset
	d.PressEnter()

	st := d.State()
	assert.Equal(t, app.NewCalculateRequest(), st.Request)
	assert.Nil(t, st.Result)
	assert.False(t, st.HasAlert())
	assert.False(t, d.SeenType(submitMsg{}))
	assert.Contains(t, d.Screen(), startDayPlaceholder)
}
