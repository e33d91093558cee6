package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"homeswerv/internal/config"
	"homeswerv/internal/logging"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "homeswerv",
		Short: "Home Swerv web application",
		Long: `homeswerv serves the Home Swerv marketing site, CMS pages, the project
board and guarantee claims dashboards, and the admin page editor.

Configuration is read from .env, the YAML file named by HOMESWERV_CONFIG and
the environment, in that order.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newServeCmd(), newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration and installs the global logger. A missing
// DATABASE_URL is reported to the caller, which decides whether it matters.
func setup() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrMissingDatabaseURL) {
		return cfg, err
	}
	if logErr := logging.Setup(cfg.LogLevel, cfg.LogFormat); logErr != nil {
		return cfg, logErr
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("%w: Postgres is required", config.ErrMissingDatabaseURL)
	}
	log.Debug().Str("env", cfg.Env).Str("addr", cfg.ListenAddr).Msg("Configuration loaded")
	return cfg, nil
}
