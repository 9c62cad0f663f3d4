// fittrack turns raw workout sensor packages into per-workout summaries.
//
// Usage:
//
//	fittrack [--config FILE] [--input FILE] [--on-error skip|abort] [--log-level LEVEL]
//
// Without --input the packages from the config file are used; with neither
// the built-in demo batch is processed.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/okian/fittrack/internal/adapters/packages"
	app "github.com/okian/fittrack/internal/app"
	"github.com/okian/fittrack/internal/config"
	"github.com/okian/fittrack/pkg/logger"
	"github.com/okian/fittrack/pkg/metrics"
)

// version is set via ldflags at build time.
var version = "dev"

type rootFlags struct {
	configPath  string
	inputPath   string
	onError     string
	logLevel    string
	logFormat   string
	metricsFile string
}

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1) //nolint:gocritic // stop already called
	}
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:           "fittrack",
		Short:         "Calculate workout summaries from sensor packages",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML config file (default $"+config.EnvConfig+")")
	cmd.Flags().StringVar(&f.inputPath, "input", "", "YAML or JSON packages file (default: packages from config)")
	cmd.Flags().StringVar(&f.onError, "on-error", "", "Reaction to a failing package: skip or abort")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log format: text or json")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the batch")

	return cmd
}

func run(cmd *cobra.Command, f rootFlags) error {
	ctx := cmd.Context()

	// Logs go to stderr; stdout carries the summaries only.
	if err := logger.Init(logger.WithWriter(cmd.ErrOrStderr())); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(ctx, f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, f, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(logger.WithWriter(cmd.ErrOrStderr()), logger.WithFormat(cfg.LogFormat)); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	pkgs := cfg.Packages
	if f.inputPath != "" {
		pkgs, err = packages.ReadFile(f.inputPath)
		if err != nil {
			return err
		}
		log.Info(ctx, "loaded packages", logger.String("input", f.inputPath), logger.Int("count", len(pkgs)))
	}

	policy, err := app.ParsePolicy(cfg.OnError)
	if err != nil {
		return err
	}
	svc, err := app.New(
		app.WithLogger(log.Named("batch")),
		app.WithErrorPolicy(policy),
	)
	if err != nil {
		return err
	}

	_, runErr := svc.Run(ctx, pkgs, cmd.OutOrStdout())

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Error(ctx, "failed to write metrics", logger.String("path", cfg.MetricsFile), logger.Error(err))
			return errors.Join(runErr, err)
		}
		log.Debug(ctx, "metrics written", logger.String("path", cfg.MetricsFile))
	}
	return runErr
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cmd *cobra.Command, f rootFlags, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("on-error") {
		cfg.OnError = strings.ToLower(strings.TrimSpace(f.onError))
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(f.logFormat))
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
}
