package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/SscSPs/travel_planner_app/internal/platform/config"
	"github.com/SscSPs/travel_planner_app/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tpa_backend",
		Short: "travel planner backend",
		Long:  `Serves the travel planner API: trips, destinations, expense ledgers and multi-currency budget summaries.`,
		// serve is the default action
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
		SilenceUsage: true,
	}
	root.AddCommand(serveCommand())
	root.AddCommand(migrateCommand())
	return root
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func migrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "apply the PostgreSQL schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			down, _ := cmd.Flags().GetBool("down")

			cfg, logger := bootstrap()
			if cfg.DatabaseURL == "" {
				return errors.New("PGSQL_URL is required to run migrations")
			}
			logger.Info("Running database migrations...", slog.Bool("down", down))
			return database.RunMigrations(cfg.DatabaseURL, down)
		},
	}
	cmd.Flags().Bool("down", false, "roll back every migration instead of applying them")
	return cmd
}

// bootstrap loads the configuration and installs the process-wide logger.
func bootstrap() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	// money is rendered as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	return cfg, logger
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
