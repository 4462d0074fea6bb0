package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/decalage/internal/domain"
)

// timestampLayouts are tried in order when parsing session timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ValidateTables checks the tables for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateTables(t *Tables) []error {
	var errs []error
	errs = append(errs, validateDays(t.Days)...)
	errs = append(errs, validateSessions(t.Sessions)...)
	return errs
}

func validateDays(days []DayRecord) []error {
	var errs []error
	if len(days) == 0 {
		errs = append(errs, fmt.Errorf("days: at least one day is required"))
	}

	seen := make(map[string]bool)
	for i, d := range days {
		prefix := fmt.Sprintf("days[%d]", i)
		if d.Day == "" {
			errs = append(errs, fmt.Errorf("%s.day is required", prefix))
		} else if seen[d.Day] {
			errs = append(errs, fmt.Errorf("%s.day: duplicate label %q", prefix, d.Day))
		}
		seen[d.Day] = true

		if d.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else if _, err := time.Parse(domain.DateLayout, d.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, d.Date))
		}
	}
	return errs
}

func validateSessions(sessions []SessionRecord) []error {
	var errs []error
	for i, s := range sessions {
		prefix := fmt.Sprintf("sessions[%d]", i)
		if _, err := parseTimestamp(s.Start, time.UTC); err != nil {
			errs = append(errs, fmt.Errorf("%s.start: %w", prefix, err))
		}
		if _, err := parseTimestamp(s.End, time.UTC); err != nil {
			errs = append(errs, fmt.Errorf("%s.end: %w", prefix, err))
		}
		if !domain.ValidSessionTypes[s.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid type %q (expected graph or rush)", prefix, s.Type))
		}
	}
	return errs
}

func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("timestamp is required")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
