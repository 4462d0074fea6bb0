package cli

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/decalage/internal/cli/formatter"
	"github.com/alexanderramin/decalage/internal/domain"
	"github.com/spf13/cobra"
)

func newDaysCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the selectable days and their dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := a.Catalog.ListDays(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDays(days))
			return nil
		},
	}
}

func newSessionsCmd(a *App) *cobra.Command {
	var typeFilter string

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List the scheduled sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				sessions []*domain.Session
				err      error
			)
			if typeFilter != "" {
				st, perr := domain.ParseSessionType(typeFilter)
				if perr != nil {
					return perr
				}
				sessions, err = a.Catalog.ListSessionsByType(cmd.Context(), st)
			} else {
				sessions, err = a.Catalog.ListSessions(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSessions(sessions))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFilter, "type", "", "only show sessions of this type (graph, rush)")
	return cmd
}

func newHoursCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hours",
		Short: "List the selectable hours",
		Args:  cobra.NoArgs,
		// Hours are static; skip seeding the catalog.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHours(slices.Collect(domain.HourOptions())))
			return nil
		},
	}
}
