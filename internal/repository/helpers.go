package repository

import (
	"fmt"
	"time"
)

// timestampLayout is how session bounds are stored. Offset and fractional
// seconds are kept so durations survive a round trip.
const timestampLayout = time.RFC3339Nano

func parseStoredTime(field, value, layout string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}
