package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bellmanford/config"
	"github.com/katalvlaran/bellmanford/logging"
	"github.com/katalvlaran/bellmanford/store"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	config    string
	logLevel  string
	logFormat string
}

// cfg is populated by loadConfig before any subcommand runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "bellmanford",
	Short: "Step through Bellman-Ford shortest paths one edge at a time",
	Long: "bellmanford runs the Bellman-Ford algorithm one edge relaxation per step,\n" +
		"detects negative cycles, and saves sessions that can be resumed later.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.config, "config", "", "Config file (.yaml or .toml)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "", "Override log format (text, json)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.Version = version
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(rootFlags.config)
	if err != nil {
		return err
	}
	if rootFlags.logLevel != "" {
		c.Log.Level = rootFlags.logLevel
	}
	if rootFlags.logFormat != "" {
		c.Log.Format = rootFlags.logFormat
	}
	if err := c.Validate(); err != nil {
		return err
	}
	level, _ := logging.ParseLevel(c.Log.Level)
	logging.Init(level, c.Log.Format, cmd.ErrOrStderr())
	cfg = c

	return nil
}

func openStore(ctx context.Context) (store.Store, error) {
	s, err := store.Open(ctx, cfg.StoreConfig())
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	logging.New("store").Debug("opened", slog.String("backend", cfg.Store.Backend))

	return s, nil
}
