package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), a)
		},
	}
}

func runTUI(ctx context.Context, a *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(newAppModel(ctx, a), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
