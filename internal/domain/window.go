package domain

import "time"

// Window is the query interval [Start, End] for which missed time is computed.
// End >= Start is expected but not enforced.
type Window struct {
	Start time.Time
	End   time.Time
}

// MissedTotals holds the overlap minutes accumulated per session type.
type MissedTotals struct {
	GraphMinutes int
	RushMinutes  int
}

// Add accumulates minutes into the bucket for t. Anything that is not graph
// lands in the rush bucket.
func (m *MissedTotals) Add(t SessionType, minutes int) {
	if t == SessionGraph {
		m.GraphMinutes += minutes
		return
	}
	m.RushMinutes += minutes
}

// GraphHours returns the graph total rounded up to whole hours.
func (m MissedTotals) GraphHours() int {
	return RoundUpToHour(m.GraphMinutes)
}

// RushHours returns the rush total rounded up to whole hours.
func (m MissedTotals) RushHours() int {
	return RoundUpToHour(m.RushMinutes)
}

// RoundUpToHour returns ceil(minutes/60). Non-positive input yields 0.
func RoundUpToHour(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return (minutes + 59) / 60
}
