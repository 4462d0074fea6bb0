package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/decalage/internal/app"
	"github.com/alexanderramin/decalage/internal/domain"
)

const windowTimeLayout = "Mon 2006-01-02 15:04"

// MissedLine renders one "Missed <Category>: N hour(s)" line.
func MissedLine(category string, hours int) string {
	return fmt.Sprintf("Missed %s: %s", category, Plural(hours, "hour"))
}

// FormatResult renders the two missed-hour lines shown after a calculation.
func FormatResult(resp *app.CalculateResponse) string {
	if resp == nil {
		return ""
	}
	graph := MissedLine("Graph", resp.GraphHours)
	rush := MissedLine("Rush", resp.RushHours)
	return SessionTypeColor(domain.SessionGraph).Render(graph) + "\n" +
		SessionTypeColor(domain.SessionRush).Render(rush)
}

// FormatResultDetail renders the result lines followed by the resolved window,
// raw minutes and the share of the window each category occupies.
func FormatResultDetail(resp *app.CalculateResponse) string {
	if resp == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(FormatResult(resp))
	b.WriteString("\n\n")

	b.WriteString(Dim("Window   "))
	b.WriteString(resp.Window.Start.Format(windowTimeLayout))
	b.WriteString(Dim(" → "))
	b.WriteString(resp.Window.End.Format(windowTimeLayout))
	b.WriteString("\n")

	windowMin := int(resp.Window.End.Sub(resp.Window.Start).Minutes())
	rows := [][]string{
		detailRow(domain.SessionGraph, resp.Totals.GraphMinutes, resp.GraphHours, windowMin),
		detailRow(domain.SessionRush, resp.Totals.RushMinutes, resp.RushHours, windowMin),
	}
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"TYPE", "MINUTES", "TIME", "HOURS", "SHARE"}, rows))
	b.WriteString(Dim(fmt.Sprintf("%s overlapping of %d", Plural(resp.Overlapping, "session"), resp.SessionCount)))

	return b.String()
}

func detailRow(t domain.SessionType, minutes, hours, windowMin int) []string {
	share := 0.0
	if windowMin > 0 {
		share = float64(minutes) / float64(windowMin)
	}
	return []string{
		SessionTypeLabel(t),
		fmt.Sprintf("%d", minutes),
		FormatMinutes(minutes),
		fmt.Sprintf("%d", hours),
		RenderShare(share, 20),
	}
}
