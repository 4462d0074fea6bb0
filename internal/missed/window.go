package missed

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/decalage/internal/domain"
)

var (
	// ErrMissingDay is returned when a day label is empty or not in the table.
	ErrMissingDay = errors.New("missing day selection")
	// ErrInvalidHour is returned when an hour is not HH:MM.
	ErrInvalidHour = errors.New("invalid hour")
)

// Selection is the raw (day, hour) pair for each window edge.
type Selection struct {
	StartDay  string
	StartHour string
	EndDay    string
	EndHour   string
}

// ResolveWindow maps a Selection onto timestamps using the day table.
// Empty hours fall back to the defaults, and an end hour of "00:00" is read
// as end of day.
func ResolveWindow(days []*domain.DaySlot, sel Selection, loc *time.Location) (domain.Window, error) {
	if loc == nil {
		loc = time.Local
	}

	startDate, okStart := lookupDate(days, sel.StartDay)
	endDate, okEnd := lookupDate(days, sel.EndDay)
	if !okStart || !okEnd {
		return domain.Window{}, ErrMissingDay
	}

	startHour := domain.CoalesceStr(sel.StartHour, domain.DefaultStartHour)
	endHour := EffectiveEndHour(sel.EndHour)

	start, err := atHour(startDate, startHour, loc)
	if err != nil {
		return domain.Window{}, err
	}
	end, err := atHour(endDate, endHour, loc)
	if err != nil {
		return domain.Window{}, err
	}
	return domain.Window{Start: start, End: end}, nil
}

// EffectiveEndHour applies the end-hour defaults: empty becomes the default
// end hour and midnight becomes end of day.
func EffectiveEndHour(h string) string {
	if h == "" || h == domain.Midnight {
		return domain.EndOfDay
	}
	return h
}

func lookupDate(days []*domain.DaySlot, label string) (time.Time, bool) {
	if label == "" {
		return time.Time{}, false
	}
	for _, d := range days {
		if d.Label == label {
			return d.Date, true
		}
	}
	return time.Time{}, false
}

func atHour(date time.Time, hour string, loc *time.Location) (time.Time, error) {
	hm, err := time.Parse(domain.HourLayout, hour)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q (expected HH:MM)", ErrInvalidHour, hour)
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, hm.Hour(), hm.Minute(), 0, 0, loc), nil
}
