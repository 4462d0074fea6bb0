package cli

import (
	"github.com/alexanderramin/decalage/internal/cli/formatter"
	"github.com/alexanderramin/decalage/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	startDayPlaceholder = "Select start day"
	endDayPlaceholder   = "Select end day"
)

// decalageHuhTheme returns a custom huh theme using the Gruvbox palette.
func decalageHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// dayOptions returns the placeholder followed by one option per day label.
// The placeholder carries an empty value so an unset day stays reachable.
func dayOptions(placeholder string, days []*domain.DaySlot) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(days)+1)
	opts = append(opts, huh.NewOption(placeholder, ""))
	for _, d := range days {
		opts = append(opts, huh.NewOption(d.Label, d.Label))
	}
	return opts
}

func hourOptions() []huh.Option[string] {
	var opts []huh.Option[string]
	for h := range domain.HourOptions() {
		opts = append(opts, huh.NewOption(h, h))
	}
	return opts
}

// newCalcForm builds the selection form bound to state's request. submit is
// set by the trailing confirmation.
func newCalcForm(state *CalcState, days []*domain.DaySlot, submit *bool) *huh.Form {
	*submit = true

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Start day").
				Options(dayOptions(startDayPlaceholder, days)...).
				Value(&state.Request.StartDay),
			huh.NewSelect[string]().
				Title("Start hour").
				Options(hourOptions()...).
				Value(&state.Request.StartHour),
			huh.NewSelect[string]().
				Title("End day").
				Options(dayOptions(endDayPlaceholder, days)...).
				Value(&state.Request.EndDay),
			huh.NewSelect[string]().
				Title("End hour").
				Options(hourOptions()...).
				Value(&state.Request.EndHour),
			huh.NewConfirm().
				Affirmative("Calculate").
				Negative("Reset").
				Value(submit),
		),
	).WithTheme(decalageHuhTheme()).WithShowHelp(false)
}
