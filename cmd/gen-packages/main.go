// gen-packages writes random, valid workout packages for feeding fittrack.
//
// Usage:
//
//	gen-packages [--count N] [--seed S] [--types SWM,RUN,WLK] [--output FILE]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/okian/fittrack/internal/adapters/packages"
	"github.com/okian/fittrack/internal/sampledata"
	"github.com/okian/fittrack/pkg/logger"
)

// Default configuration constants.
const (
	defaultCount = 100
	defaultSeed  = 1
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1) //nolint:gocritic // stop already called
	}
}

func newRootCmd() *cobra.Command {
	var (
		count  int
		seed   uint64
		types  []string
		output string
	)

	cmd := &cobra.Command{
		Use:           "gen-packages",
		Short:         "Generate random workout packages",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(logger.WithWriter(cmd.ErrOrStderr())); err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}
			ctx := cmd.Context()

			pkgs, err := sampledata.Generate(ctx, sampledata.Config{
				Count: count,
				Seed:  seed,
				Codes: types,
			})
			if err != nil {
				return err
			}

			if output == "" {
				return packages.Write(cmd.OutOrStdout(), pkgs)
			}
			if err := packages.WriteFile(output, pkgs); err != nil {
				return err
			}
			logger.Get().Info(ctx, "packages written", logger.String("output", output), logger.Int("count", len(pkgs)))
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", defaultCount, "Number of packages to generate")
	cmd.Flags().Uint64Var(&seed, "seed", defaultSeed, "Random seed; equal seeds give equal output")
	cmd.Flags().StringSliceVar(&types, "types", nil, "Workout type codes to generate (default all)")
	cmd.Flags().StringVar(&output, "output", "", "Output file (default stdout)")

	return cmd
}
