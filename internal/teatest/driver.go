// Package teatest runs bubbletea models synchronously in tests.
//
// Instead of starting a tea.Program, the Driver calls Update directly and
// executes returned commands inline, feeding their messages back into the
// model. Commands that do not return within the configured timeout (cursor
// blinks, tickers) are dropped.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained commands one Send may execute.
const MaxDrainDepth = 100

// DefaultCmdTimeout separates instant commands (service calls against an
// in-memory database, message factories) from timer-driven ones.
const DefaultCmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg is produced by a command.
	Quitting bool

	// Seen records every message delivered to the model, in order.
	Seen []tea.Msg

	cmdTimeout time.Duration
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize delivers an initial WindowSizeMsg.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.deliver(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout overrides DefaultCmdTimeout.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) {
		d.cmdTimeout = timeout
	}
}

// New creates a Driver for model. Call DrainInit to run the model's Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, cmdTimeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit executes Init and every command that follows from it.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send delivers msg and drains the resulting commands. It is a no-op once
// the model has quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.drain(d.deliver(msg), 0)
}

// Press sends a key of the given type, e.g. tea.KeyEnter.
func (d *Driver) Press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// PressKey sends a single rune key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() { d.T.Helper(); d.Press(tea.KeyEnter) }
func (d *Driver) PressEsc()   { d.T.Helper(); d.Press(tea.KeyEsc) }
func (d *Driver) PressCtrlC() { d.T.Helper(); d.Press(tea.KeyCtrlC) }
func (d *Driver) PressUp()    { d.T.Helper(); d.Press(tea.KeyUp) }
func (d *Driver) PressDown()  { d.T.Helper(); d.Press(tea.KeyDown) }

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// View returns the model's current rendering.
func (d *Driver) View() string {
	return d.Model.View()
}

// SeenType reports whether a message of the same dynamic type as sample was
// delivered.
func (d *Driver) SeenType(sample tea.Msg) bool {
	want := fmt.Sprintf("%T", sample)
	for _, msg := range d.Seen {
		if fmt.Sprintf("%T", msg) == want {
			return true
		}
	}
	return false
}

func (d *Driver) deliver(msg tea.Msg) tea.Cmd {
	d.Seen = append(d.Seen, msg)
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	return cmd
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := d.run(cmd)
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.deliver(msg)
		return
	}

	if isBlink(msg) {
		return
	}
	d.drain(d.deliver(msg), depth+1)
}

// run executes cmd, giving up after cmdTimeout.
func (d *Driver) run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d.cmdTimeout):
		return nil
	}
}

// isBlink matches the unexported cursor blink messages from bubbles, which
// chain into blocking timer commands.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
