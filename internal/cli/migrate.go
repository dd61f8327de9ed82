package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"order-desk/internal/connections/database"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the orders tables in the configured SQL database",
		Long: `Create the orders and order_items tables if they do not exist.

serve does the same on start; migrate lets deployments run it as a separate step.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lg, err := loadConfig(rootOpts, cmd, "order-desk-migrate")
			if err != nil {
				return err
			}
			if databaseURL != "" {
				cfg.Database.URL = databaseURL
			}

			db, dialect, err := database.ConnectDB(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.EnsureSchema(cmd.Context(), db, dialect); err != nil {
				return err
			}
			lg.Info("schema_applied", map[string]any{"dialect": string(dialect)})
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", dialect)
			return err
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "database url, overrides database.url and DATABASE_URL")

	return cmd
}
