package commands

import (
	"drinkdays/internal/di"
	"drinkdays/internal/structures"
	"fmt"
	"github.com/spf13/cobra"
)

func NewServeCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the local JSON API",
		Long: `Restore the journal and serve the JSON API until SIGINT or SIGTERM.

The bind address comes from the webServer section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := di.InitApp(flags)
			if err != nil {
				return fmt.Errorf("initializing app: %w", err)
			}
			defer cleanup()

			return app.Run(cmd.Context())
		},
	}
}
