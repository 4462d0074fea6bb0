package cli

import (
	"github.com/alexanderramin/decalage/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Calculator service.CalculatorService
	Catalog    service.CatalogService

	// DataPath is the default for --data. Empty means the bundled tables.
	DataPath string

	// IsInteractive reports whether the bare command may start the TUI.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "decalage" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "decalage",
		Short:         "Calculateur de decalage: missed graph and rush hours",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := loadCatalog(cmd.Context(), app, dataPath)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&dataPath, "data", app.DataPath, "tables file (JSON or YAML) replacing the bundled days and sessions")

	root.AddCommand(
		newCalcCmd(app),
		newDaysCmd(app),
		newSessionsCmd(app),
		newHoursCmd(),
		newTUICmd(app),
	)

	return root
}
