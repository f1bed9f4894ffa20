package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/quitsmoke-backend/internal/app"
	"github.com/heartmarshall/quitsmoke-backend/internal/app/seeder"
)

func init() {
	seedCmd.Flags().StringVar(&seedConfigPath, "seed-config", "", "Path to seeder YAML config (env SEED_* otherwise)")
	seedCmd.Flags().StringSliceVar(&seedPhases, "phase", nil, "Phases to run: user, plan, cravings, milestones (default all)")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Log what would be written without writing")
	rootCmd.AddCommand(seedCmd)
}

var (
	seedConfigPath string
	seedPhases     []string
	seedDryRun     bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo account with a quit plan and craving history",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	seedCfg, err := seeder.LoadConfig(seedConfigPath)
	if err != nil {
		return err
	}
	if seedDryRun {
		seedCfg.DryRun = true
	}

	return app.Seed(cmd.Context(), cfg, *seedCfg, seedPhases, logger)
}
