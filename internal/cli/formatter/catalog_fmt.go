package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/decalage/internal/domain"
)

const sessionTimeLayout = "Mon 01-02 15:04"

// FormatDays renders the day table.
func FormatDays(days []*domain.DaySlot) string {
	if len(days) == 0 {
		return Dim("No days configured.")
	}

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{Bold(d.Label), d.DateString()})
	}
	return Header("Days") + "\n\n" + RenderTable([]string{"DAY", "DATE"}, rows)
}

// FormatSessions renders the session list with durations.
func FormatSessions(sessions []*domain.Session) string {
	if len(sessions) == 0 {
		return Dim("No sessions found.")
	}

	rows := make([][]string, 0, len(sessions))
	total := 0
	for _, s := range sessions {
		mins := int(s.Duration().Minutes())
		total += mins
		rows = append(rows, []string{
			SessionTypeLabel(s.Type),
			s.Start.Format(sessionTimeLayout),
			s.End.Format(sessionTimeLayout),
			FormatMinutes(mins),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Sessions"))
	b.WriteString("\n\n")
	b.WriteString(RenderTable([]string{"TYPE", "START", "END", "DURATION"}, rows))
	b.WriteString(Dim(fmt.Sprintf("%s, %s total", Plural(len(sessions), "session"), FormatMinutes(total))))
	return b.String()
}

// FormatHours renders the selectable hour options, one per line.
func FormatHours(hours []string) string {
	return strings.Join(hours, "\n")
}
