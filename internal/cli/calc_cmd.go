package cli

import (
	"fmt"

	"github.com/alexanderramin/decalage/internal/app"
	"github.com/alexanderramin/decalage/internal/cli/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addWindowFlags registers the four window selectors on fs, bound to req.
// Hours start from the request's current values.
func addWindowFlags(fs *pflag.FlagSet, req *app.CalculateRequest) {
	fs.StringVar(&req.StartDay, "start-day", req.StartDay, "start day label (e.g. Mon)")
	fs.StringVar(&req.StartHour, "start-hour", req.StartHour, "start hour, HH:MM")
	fs.StringVar(&req.EndDay, "end-day", req.EndDay, "end day label (e.g. Fri)")
	fs.StringVar(&req.EndHour, "end-hour", req.EndHour, "end hour, HH:MM (00:00 means 23:59)")
}

func newCalcCmd(a *App) *cobra.Command {
	req := app.NewCalculateRequest()
	var detail bool

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate missed graph and rush hours for a window",
		Example: `  decalage calc --start-day Mon --end-day Wed
  decalage calc --start-day Fri --start-hour 18:00 --end-day Sat --end-hour 00:00 --minutes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Calculator.Calculate(cmd.Context(), req)
			if err != nil {
				return err
			}

			if detail {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatResultDetail(resp))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatResult(resp))
			return nil
		},
	}

	addWindowFlags(cmd.Flags(), &req)
	cmd.Flags().BoolVar(&detail, "minutes", false, "also show the window, raw minutes and window share")

	return cmd
}
