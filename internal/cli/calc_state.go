package cli

import (
	"errors"

	"github.com/alexanderramin/decalage/internal/app"
)

// CalcState is the transient state behind the calculator screen. Request
// holds the current selections; Result and Alert change only through Apply.
type CalcState struct {
	Request app.CalculateRequest
	Result  *app.CalculateResponse
	Alert   string
}

func newCalcState() *CalcState {
	return &CalcState{Request: app.NewCalculateRequest()}
}

// Apply records the outcome of a calculation. A failure raises an alert and
// leaves the previous result on screen.
func (s *CalcState) Apply(resp *app.CalculateResponse, err error) {
	if err != nil {
		var ce *app.CalcError
		if errors.As(err, &ce) {
			s.Alert = ce.Message
		} else {
			s.Alert = err.Error()
		}
		return
	}
	s.Result = resp
	s.Alert = ""
}

// DismissAlert clears a pending alert.
func (s *CalcState) DismissAlert() { s.Alert = "" }

// HasAlert reports whether an alert is blocking the form.
func (s *CalcState) HasAlert() bool { return s.Alert != "" }
