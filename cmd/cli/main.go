package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"sim-crawl/internal/crawler"
)

const inputDir = "simulation_output"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel   string
		noProgress bool
	)

	cmd := &cobra.Command{
		Use:   "simcrawl",
		Short: "Summarize simulation run parameters",
		Long: `Scan ` + inputDir + `/ for simulation runs and collect the Nmax, tdiv and dt
parameters from each run's ` + crawler.AbstractFileName + ` into ` +
			filepath.Join(inputDir, crawler.ReportFileName) + `.

The report is rewritten on every invocation. The first run whose abstract
file is missing or unreadable aborts the crawl.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLogLevel(logLevel)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			reportPath := filepath.Join(inputDir, crawler.ReportFileName)
			return crawler.Run(cmd.Context(), inputDir, reportPath, !noProgress, logger)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")

	return cmd
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}
	return level, nil
}
