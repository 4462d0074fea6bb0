package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/decalage/internal/app"
	"github.com/alexanderramin/decalage/internal/cli/formatter"
	"github.com/alexanderramin/decalage/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const appTitle = "Calculateur de decalage"

// ── messages ─────────────────────────────────────────────────────────────────

type daysLoadedMsg struct {
	days []*domain.DaySlot
	err  error
}

// submitMsg asks the model to run a calculation with the current selections.
type submitMsg struct{}

type calculateMsg struct {
	resp *app.CalculateResponse
	err  error
}

// ── key bindings ─────────────────────────────────────────────────────────────

type appKeyMap struct {
	Select  key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

var appKeys = appKeyMap{
	Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Dismiss: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// appModel is the root bubbletea Model for the calculator screen.
type appModel struct {
	ctx   context.Context
	app   *App
	state *CalcState

	days   []*domain.DaySlot
	form   *huh.Form
	submit *bool

	loadErr  error
	width    int
	height   int
	quitting bool
}

func newAppModel(ctx context.Context, a *App) appModel {
	return appModel{
		ctx:    ctx,
		app:    a,
		state:  newCalcState(),
		submit: new(bool),
	}
}

func (m *appModel) loadDaysCmd() tea.Cmd {
	ctx, catalog := m.ctx, m.app.Catalog
	return func() tea.Msg {
		days, err := catalog.ListDays(ctx)
		return daysLoadedMsg{days: days, err: err}
	}
}

func (m *appModel) calculateCmd() tea.Cmd {
	ctx, calc, req := m.ctx, m.app.Calculator, m.state.Request
	return func() tea.Msg {
		resp, err := calc.Calculate(ctx, req)
		return calculateMsg{resp: resp, err: err}
	}
}

// resetForm rebuilds the form from the current selections.
func (m *appModel) resetForm() tea.Cmd {
	m.form = newCalcForm(m.state, m.days, m.submit)
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
	return m.form.Init()
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return m.loadDaysCmd()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case daysLoadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.days = msg.days
		return m, m.resetForm()

	case submitMsg:
		return m, m.calculateCmd()

	case calculateMsg:
		m.state.Apply(msg.resp, msg.err)
		return m, m.resetForm()
	}

	return m.updateForm(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, appKeys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	// The alert blocks the form until it is dismissed.
	if m.state.HasAlert() {
		if key.Matches(msg, appKeys.Dismiss) {
			m.state.DismissAlert()
		}
		return m, nil
	}

	if m.loadErr != nil {
		return m, nil
	}

	return m.updateForm(msg)
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if !*m.submit {
			m.state.Request = app.NewCalculateRequest()
			return m, tea.Batch(cmd, m.resetForm())
		}
		return m, tea.Batch(cmd, func() tea.Msg { return submitMsg{} })
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}

	switch {
	case m.loadErr != nil:
		sections = append(sections, formatter.StyleRed.Render("Error: "+m.loadErr.Error()))
	case m.state.HasAlert():
		sections = append(sections, formatter.RenderAlert(m.state.Alert))
	case m.form == nil:
		sections = append(sections, formatter.Dim("Loading days…"))
	default:
		sections = append(sections, m.form.View())
	}

	if m.state.Result != nil {
		sections = append(sections, formatter.RenderBox("Missed time", formatter.FormatResult(m.state.Result)))
	}

	sections = append(sections, m.renderStatusBar())
	return strings.Join(sections, "\n")
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render(appTitle)
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return title + "\n" + sep
}

func (m *appModel) shortHelp() []key.Binding {
	if m.state.HasAlert() {
		return []key.Binding{appKeys.Dismiss, appKeys.Quit}
	}
	return []key.Binding{appKeys.Select, appKeys.Quit}
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.shortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
