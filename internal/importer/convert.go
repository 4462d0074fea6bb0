package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/decalage/internal/domain"
	"github.com/google/uuid"
)

// Converted holds domain objects ready for the catalog.
type Converted struct {
	Days     []*domain.DaySlot
	Sessions []*domain.Session
}

// Convert transforms validated Tables into domain objects. Timestamps without
// a zone are read in loc. Call ValidateTables first; Convert assumes the
// tables are valid.
func Convert(t *Tables, loc *time.Location) (*Converted, error) {
	if loc == nil {
		loc = time.Local
	}

	out := &Converted{
		Days:     make([]*domain.DaySlot, 0, len(t.Days)),
		Sessions: make([]*domain.Session, 0, len(t.Sessions)),
	}

	for i, d := range t.Days {
		date, err := time.ParseInLocation(domain.DateLayout, d.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("parsing days[%d].date: %w", i, err)
		}
		out.Days = append(out.Days, &domain.DaySlot{
			Label: d.Day,
			Date:  date,
			Order: i,
		})
	}

	for i, s := range t.Sessions {
		start, err := parseTimestamp(s.Start, loc)
		if err != nil {
			return nil, fmt.Errorf("parsing sessions[%d].start: %w", i, err)
		}
		end, err := parseTimestamp(s.End, loc)
		if err != nil {
			return nil, fmt.Errorf("parsing sessions[%d].end: %w", i, err)
		}
		typ, err := domain.ParseSessionType(s.Type)
		if err != nil {
			return nil, fmt.Errorf("sessions[%d]: %w", i, err)
		}
		out.Sessions = append(out.Sessions, &domain.Session{
			ID:    uuid.New().String(),
			Start: start,
			End:   end,
			Type:  typ,
			Order: i,
		})
	}

	return out, nil
}
