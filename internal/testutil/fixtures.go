package testutil

import (
	"time"

	"github.com/alexanderramin/decalage/internal/domain"
	"github.com/google/uuid"
)

// MustTime parses "2006-01-02T15:04" in UTC and panics on failure.
func MustTime(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

// MustDate parses "2006-01-02" in UTC and panics on failure.
func MustDate(s string) time.Time {
	t, err := time.ParseInLocation(domain.DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

// Day slot options
type DaySlotOption func(*domain.DaySlot)

func WithDayOrder(n int) DaySlotOption {
	return func(d *domain.DaySlot) {
		d.Order = n
	}
}

func NewTestDaySlot(label, date string, opts ...DaySlotOption) *domain.DaySlot {
	d := &domain.DaySlot{
		Label: label,
		Date:  MustDate(date),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Session options
type SessionOption func(*domain.Session)

func WithSessionType(t domain.SessionType) SessionOption {
	return func(s *domain.Session) {
		s.Type = t
	}
}

func WithSessionOrder(n int) SessionOption {
	return func(s *domain.Session) {
		s.Order = n
	}
}

// NewTestSession builds a graph session between start and end, both in
// "2006-01-02T15:04" form.
func NewTestSession(start, end string, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		ID:    uuid.New().String(),
		Start: MustTime(start),
		End:   MustTime(end),
		Type:  domain.SessionGraph,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
