package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "basicstats",
		Short: "Descriptive statistics for numeric samples",
		Long: `Basicstats computes descriptive statistics over numeric samples.

It summarizes samples loaded from plain-text or CSV files, filters them by
value bounds, and estimates bootstrap confidence intervals for a chosen
statistic.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newDescribeCommand())
	cmd.AddCommand(newCICommand())
	cmd.AddCommand(newFilterCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
