package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/quitsmoke-backend/internal/app"
)

func init() {
	rootCmd.AddCommand(cleanupTokensCmd)
}

var cleanupTokensCmd = &cobra.Command{
	Use:   "cleanup-tokens",
	Short: "Delete expired and revoked refresh tokens",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		return app.CleanupTokens(cmd.Context(), cfg, logger)
	},
}
