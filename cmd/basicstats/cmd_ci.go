package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	basicstats "github.com/edwardlc0000/BasicStats"
	"github.com/edwardlc0000/BasicStats/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	ciFormat     string
	ciColumn     string
	ciStat       string
	ciLevel      float64
	ciIterations int
	ciSeed       int64
)

func newCICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ci <file> [<file2>]",
		Short: "Bootstrap confidence interval for a statistic",
		Long: `Estimate a bootstrap confidence interval for a statistic of a sample.

With one file, the interval bounds the statistic itself. With two files,
both samples are resampled independently on each iteration and the interval
bounds the difference statistic(sample1) - statistic(sample2).`,
		Args: cobra.RangeArgs(1, 2),
		RunE: ciCommandE,
	}

	cmd.Flags().StringVarP(&ciFormat, "format", "f", "table", "Output format: table, json, or yaml")
	cmd.Flags().StringVarP(&ciColumn, "column", "c", "", "CSV column to read (defaults to the first column)")
	cmd.Flags().StringVarP(&ciStat, "stat", "s", "mean", "Statistic: mean, median, sum, stdev, or geomean")
	cmd.Flags().Float64VarP(&ciLevel, "level", "l", 95, "Confidence level percentage, within (0, 100)")
	cmd.Flags().IntVarP(&ciIterations, "iterations", "n", basicstats.DefaultBootstrapIterations, "Number of bootstrap resamples")
	cmd.Flags().Int64Var(&ciSeed, "seed", -1, "Random seed; negative uses a non-deterministic source")

	return cmd
}

// ciReport is the full ci output.
type ciReport struct {
	Files     []string            `json:"files" yaml:"files"`
	Statistic string              `json:"statistic" yaml:"statistic"`
	Estimate  float64             `json:"estimate" yaml:"estimate"`
	Interval  basicstats.Interval `json:"interval" yaml:"interval"`
}

func ciCommandE(cmd *cobra.Command, args []string) error {
	if err := validateFormat(ciFormat); err != nil {
		return err
	}
	stat, err := statisticByName(ciStat)
	if err != nil {
		return err
	}

	samples := make([][]float64, 0, len(args))
	for _, path := range args {
		values, err := dataset.Load(path, ciColumn)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		slog.Debug("sample loaded", "file", path, "count", len(values))
		samples = append(samples, values)
	}

	var estimate float64
	var interval basicstats.Interval
	if len(samples) == 2 {
		estimate = stat(samples[0]) - stat(samples[1])
		interval, err = basicstats.BootstrapDiffCIWithSeed(samples[0], samples[1], stat, ciLevel, ciIterations, ciSeed)
	} else {
		estimate = stat(samples[0])
		interval, err = basicstats.BootstrapCIWithSeed(samples[0], stat, ciLevel, ciIterations, ciSeed)
	}
	if err != nil {
		return err
	}

	report := &ciReport{
		Files:     args,
		Statistic: ciStat,
		Estimate:  estimate,
		Interval:  interval,
	}

	out := cmd.OutOrStdout()
	switch ciFormat {
	case "json":
		return printJSON(out, report)
	case "yaml":
		return printYAML(out, report)
	}
	printCIReport(out, report)
	return nil
}

func statisticByName(name string) (basicstats.Statistic[float64], error) {
	switch name {
	case "mean":
		return basicstats.Mean[float64], nil
	case "median":
		return basicstats.Median[float64], nil
	case "sum":
		return basicstats.Sum[float64], nil
	case "stdev":
		return basicstats.StdDev[float64], nil
	case "geomean":
		return basicstats.GeoMean[float64], nil
	}
	return nil, fmt.Errorf("unsupported statistic %q: must be mean, median, sum, stdev, or geomean", name)
}

func printCIReport(w io.Writer, r *ciReport) {
	fmt.Fprintln(w, strings.Repeat("=", 48))
	if len(r.Files) == 2 {
		fmt.Fprintf(w, " BOOTSTRAP CI  %s(%s) - %s(%s)\n", r.Statistic, r.Files[0], r.Statistic, r.Files[1])
	} else {
		fmt.Fprintf(w, " BOOTSTRAP CI  %s(%s)\n", r.Statistic, r.Files[0])
	}
	fmt.Fprintln(w, strings.Repeat("=", 48))

	fmt.Fprintf(w, "  %-22s %v\n", "Estimate", r.Estimate)
	fmt.Fprintf(w, "  %-22s [%v, %v]\n", fmt.Sprintf("%g%% interval", r.Interval.ConfidenceLevel), r.Interval.Low, r.Interval.High)
	fmt.Fprintf(w, "  %-22s %d\n", "Iterations", r.Interval.Iterations)
}
