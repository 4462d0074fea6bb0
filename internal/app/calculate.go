package app

import (
	"errors"

	"github.com/alexanderramin/decalage/internal/domain"
)

type CalculateRequest struct {
	StartDay  string
	StartHour string
	EndDay    string
	EndHour   string
}

// NewCalculateRequest returns a request with the default hours preselected
// and no days chosen.
func NewCalculateRequest() CalculateRequest {
	return CalculateRequest{
		StartHour: domain.DefaultStartHour,
		EndHour:   domain.DefaultEndHour,
	}
}

type CalculateResponse struct {
	Window       domain.Window
	Totals       domain.MissedTotals
	GraphHours   int
	RushHours    int
	SessionCount int
	Overlapping  int
}

type CalcErrorCode string

const (
	CalcErrMissingDay  CalcErrorCode = "MISSING_DAY"
	CalcErrInvalidHour CalcErrorCode = "INVALID_HOUR"
)

// MissingDayMessage is shown when either day selection is absent.
const MissingDayMessage = "Please select both start and end days."

type CalcError struct {
	Code    CalcErrorCode
	Message string
}

func (e *CalcError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// IsCalcError reports whether err carries a CalcError with the given code.
func IsCalcError(err error, code CalcErrorCode) bool {
	var ce *CalcError
	return errors.As(err, &ce) && ce.Code == code
}
