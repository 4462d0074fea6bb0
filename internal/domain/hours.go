package domain

import (
	"fmt"
	"iter"
)

const (
	// FirstHour is the earliest selectable hour.
	FirstHour = 9
	// LastHour is the latest full hour offered before the end-of-day sentinel.
	LastHour = 23

	// HourLayout is the format of every hour label.
	HourLayout = "15:04"

	// EndOfDay is the trailing sentinel option and the substitute for a
	// midnight end hour.
	EndOfDay = "23:59"
	// Midnight as an end hour is read as EndOfDay.
	Midnight = "00:00"

	DefaultStartHour = "09:00"
	DefaultEndHour   = EndOfDay
)

// HourOptions yields "09:00" through "23:00" hourly, then EndOfDay.
func HourOptions() iter.Seq[string] {
	return func(yield func(string) bool) {
		for h := FirstHour; h <= LastHour; h++ {
			if !yield(fmt.Sprintf("%02d:00", h)) {
				return
			}
		}
		yield(EndOfDay)
	}
}
