package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"cellstats/internal/config"
	"cellstats/internal/csv"
	"cellstats/internal/logging"
	"cellstats/internal/session"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	csvFile   string
	logLevel  string
	logFormat string
	verbose   bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "cellstats",
	Short: "Load, clean and analyze a sheet of phone specifications",
	Long: `cellstats loads a CSV of phone specifications, normalizes every column
and reports statistics over the cells: average body weight per OEM, phones
with a single sensor, announce/launch year mismatches and the busiest launch year.

Running without a command starts the interactive TUI.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { _ = logger.Sync() },
	RunE:              runTUI,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&csvFile, "csv", "c", "", "cells CSV to load (default $CELLS_CSV or cells.csv)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(shellCmd)
}

// setup loads .env and the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if csvFile != "" {
		os.Setenv("CELLS_CSV", csvFile)
	}
	if logLevel != "" {
		os.Setenv("LOG_LEVEL", logLevel)
	}
	if verbose {
		os.Setenv("LOG_LEVEL", "debug")
	}
	if logFormat != "" {
		os.Setenv("LOG_FORMAT", logFormat)
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so the TUI only logs to a file.
	if isTUI(cmd) && cfg.Logging.File == "" {
		logger = zap.NewNop()
		return nil
	}

	logger, err = logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	return err
}

func isTUI(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "tui"
}

// loadSession reads the configured CSV into a fresh session.
func loadSession() (*session.Session, error) {
	records, err := csv.NewParser(cfg.Input.CSVPath).ParseRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	sess := session.New(logger)
	sess.Ingest(records)
	logger.Info("cells loaded",
		zap.String("csv", cfg.Input.CSVPath),
		zap.Int("cells", sess.Len()),
	)
	return sess, nil
}
