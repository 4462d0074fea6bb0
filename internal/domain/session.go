package domain

import "time"

// Session is a scheduled class interval tagged with its category.
type Session struct {
	ID    string
	Start time.Time
	End   time.Time
	Type  SessionType
	Order int
}

// Duration returns End - Start. End is assumed to be >= Start.
func (s *Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
