package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/quitsmoke-backend/internal/app"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply, roll back or inspect database migrations",
	Long:      `Runs the embedded goose migrations. "down" rolls back a single version.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{app.MigrateUp, app.MigrateDown, app.MigrateStatus},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	return app.Migrate(cmd.Context(), cfg.Database.DSN, args[0], logger)
}
