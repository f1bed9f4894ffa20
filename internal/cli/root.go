// Package cli implements the quitsmoke command-line interface using Cobra.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/quitsmoke-backend/internal/app"
	"github.com/heartmarshall/quitsmoke-backend/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "quitsmoke",
	Short: "Quit smoking companion backend",
	Long: `quitsmoke serves the REST API that tracks a user's quit plan,
smoke-free statistics, cravings and health milestones.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to YAML config (default $CONFIG_PATH or ./config.yaml)")
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the process logger.
func setup() (*config.Config, *slog.Logger, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log, os.Stderr), nil
}
