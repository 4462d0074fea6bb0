package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/decalage/internal/app"
	"github.com/alexanderramin/decalage/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestFormatMinutes(t *testing.T) {
	cases := map[int]string{
		-5:  "0m",
		0:   "0m",
		45:  "45m",
		60:  "1h",
		125: "2h 5m",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatMinutes(in), "minutes=%d", in)
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "0 hours", Plural(0, "hour"))
	assert.Equal(t, "1 hour", Plural(1, "hour"))
	assert.Equal(t, "2 hours", Plural(2, "hour"))
}

func TestMissedLine(t *testing.T) {
	assert.Equal(t, "Missed Graph: 1 hour", MissedLine("Graph", 1))
	assert.Equal(t, "Missed Rush: 3 hours", MissedLine("Rush", 3))
}

func TestFormatResult(t *testing.T) {
	out := stripANSI(FormatResult(&app.CalculateResponse{GraphHours: 2, RushHours: 0}))
	assert.Equal(t, "Missed Graph: 2 hours\nMissed Rush: 0 hours", out)
}

func TestFormatResult_Nil(t *testing.T) {
	assert.Empty(t, FormatResult(nil))
	assert.Empty(t, FormatResultDetail(nil))
}

func TestFormatResultDetail(t *testing.T) {
	start := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	resp := &app.CalculateResponse{
		Window:       domain.Window{Start: start, End: start.Add(10 * time.Hour)},
		Totals:       domain.MissedTotals{GraphMinutes: 125, RushMinutes: 0},
		GraphHours:   3,
		SessionCount: 15,
		Overlapping:  2,
	}

	out := stripANSI(FormatResultDetail(resp))
	assert.Contains(t, out, "Missed Graph: 3 hours")
	assert.Contains(t, out, "Mon 2025-01-06 09:00")
	assert.Contains(t, out, "Mon 2025-01-06 19:00")
	assert.Contains(t, out, "2h 5m")
	assert.Contains(t, out, "2 sessions overlapping of 15")
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{{StyleBlue.Render("long-cell"), "x"}, {"s", "y"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "x"), strings.Index(lines[3], "y"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderShare(t *testing.T) {
	assert.Contains(t, stripANSI(RenderShare(0.5, 10)), " 50%")
	assert.Contains(t, stripANSI(RenderShare(2, 10)), "100%")
	assert.Contains(t, stripANSI(RenderShare(-1, 10)), "  0%")
}

func TestFormatDays(t *testing.T) {
	days := []*domain.DaySlot{
		{Label: "Mon", Date: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)},
		{Label: "Tue", Date: time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)},
	}
	out := stripANSI(FormatDays(days))
	assert.Contains(t, out, "DAYS")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "2025-01-07")
}

func TestFormatDays_Empty(t *testing.T) {
	assert.Equal(t, "No days configured.", stripANSI(FormatDays(nil)))
}

func TestFormatSessions(t *testing.T) {
	start := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	sessions := []*domain.Session{
		{Start: start, End: start.Add(2 * time.Hour), Type: domain.SessionGraph},
		{Start: start.Add(8 * time.Hour), End: start.Add(9 * time.Hour), Type: domain.SessionRush},
	}
	out := stripANSI(FormatSessions(sessions))
	assert.Contains(t, out, "Graph")
	assert.Contains(t, out, "Rush")
	assert.Contains(t, out, "Mon 01-06 10:00")
	assert.Contains(t, out, "2 sessions, 3h total")
}

func TestFormatSessions_Empty(t *testing.T) {
	assert.Equal(t, "No sessions found.", stripANSI(FormatSessions(nil)))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "09:00\n23:59", FormatHours([]string{"09:00", "23:59"}))
}
