package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/sweetbliss/internal/config"
	"github.com/sweetbliss/internal/logging"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	logLevel string

	// cfg and logger are populated by PersistentPreRunE and shared with all subcommands.
	cfg    *config.Config
	logger *zap.Logger

	logOutput io.Writer = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:   "sweetbliss",
	Short: "Sweet Bliss marketing site",
	Long: `sweetbliss manages the Sweet Bliss FMCG distribution website.
It migrates the schema, seeds the initial content tree and catalogue,
and serves the public and admin JSON API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (YAML, TOML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// --log-level flag takes precedence over the configured level.
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		logger = logging.New(cfg.Log.Level, cfg.Log.Format, logOutput)
		return nil
	}

	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	}

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(serveCmd)
}

// Execute is the entry point called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
