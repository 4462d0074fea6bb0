// Package missed computes how much scheduled session time falls inside a
// query window. Everything here is pure: no storage, no UI.
package missed

import (
	"time"

	"github.com/alexanderramin/decalage/internal/domain"
)

// Accumulate sums, per session type, the minutes of each session that fall
// inside w. Sessions ending before w.Start or starting after w.End are
// skipped. A session that only touches a window edge contributes 0.
func Accumulate(w domain.Window, sessions []*domain.Session) domain.MissedTotals {
	var totals domain.MissedTotals
	for _, s := range sessions {
		if s.End.Before(w.Start) || s.Start.After(w.End) {
			continue
		}
		totals.Add(s.Type, OverlapMinutes(w, s))
	}
	return totals
}

// OverlapMinutes returns the clipped length of s inside w:
// duration - max(0, w.Start-s.Start) - max(0, s.End-w.End).
// Each term is measured in whole minutes truncated toward zero. The result
// is floored at 0 so an inverted window cannot produce negative time.
func OverlapMinutes(w domain.Window, s *domain.Session) int {
	before := max(0, minutesBetween(s.Start, w.Start))
	after := max(0, minutesBetween(w.End, s.End))

	overlap := minutesBetween(s.Start, s.End) - before - after
	return max(0, overlap)
}

// minutesBetween returns to-from in whole minutes, truncated toward zero.
func minutesBetween(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}

// Overlapping returns the sessions that contribute at least one minute to
// Accumulate, in input order. Edge-touching sessions are left out.
func Overlapping(w domain.Window, sessions []*domain.Session) []*domain.Session {
	var out []*domain.Session
	for _, s := range sessions {
		if s.End.Before(w.Start) || s.Start.After(w.End) {
			continue
		}
		if OverlapMinutes(w, s) > 0 {
			out = append(out, s)
		}
	}
	return out
}
