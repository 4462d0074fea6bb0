package domain

import "time"

// DateLayout is the calendar date format used by the day table.
const DateLayout = "2006-01-02"

// DaySlot maps a selectable day label to its calendar date.
type DaySlot struct {
	Label string
	Date  time.Time
	Order int
}

// DateString returns the slot's date in DateLayout.
func (d *DaySlot) DateString() string {
	return d.Date.Format(DateLayout)
}
