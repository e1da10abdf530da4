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
	describeFormat      string
	describeColumn      string
	describePercentiles []float64
)

func newDescribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <file>",
		Short: "Summarize a numeric sample",
		Long: `Compute descriptive statistics for a sample loaded from a file.

Plain-text files hold whitespace-separated numbers ("-" reads stdin); files
with a .csv extension are read through their header row, taking the column
named by --column (or the first column).`,
		Args: cobra.ExactArgs(1),
		RunE: describeCommandE,
	}

	cmd.Flags().StringVarP(&describeFormat, "format", "f", "table", "Output format: table, json, or yaml")
	cmd.Flags().StringVarP(&describeColumn, "column", "c", "", "CSV column to read (defaults to the first column)")
	cmd.Flags().Float64SliceVarP(&describePercentiles, "percentiles", "p", nil, "Additional percentile ranks to report")

	return cmd
}

// percentileEntry pairs a percentile rank with its interpolated value.
type percentileEntry struct {
	Rank  float64 `json:"rank" yaml:"rank"`
	Value float64 `json:"value" yaml:"value"`
}

// sampleSummary is the full describe output.
type sampleSummary struct {
	File             string            `json:"file" yaml:"file"`
	Count            int               `json:"count" yaml:"count"`
	Sum              float64           `json:"sum" yaml:"sum"`
	Mean             float64           `json:"mean" yaml:"mean"`
	GeoMean          float64           `json:"geo_mean" yaml:"geo_mean"`
	Median           float64           `json:"median" yaml:"median"`
	FirstQuartile    float64           `json:"first_quartile" yaml:"first_quartile"`
	ThirdQuartile    float64           `json:"third_quartile" yaml:"third_quartile"`
	Variance         float64           `json:"variance" yaml:"variance"`
	StdDev           float64           `json:"stdev" yaml:"stdev"`
	CoeffOfVariation float64           `json:"coeff_of_variation" yaml:"coeff_of_variation"`
	Range            float64           `json:"range" yaml:"range"`
	IQR              float64           `json:"iqr" yaml:"iqr"`
	Percentiles      []percentileEntry `json:"percentiles,omitempty" yaml:"percentiles,omitempty"`
}

func describeCommandE(cmd *cobra.Command, args []string) error {
	if err := validateFormat(describeFormat); err != nil {
		return err
	}

	values, err := dataset.Load(args[0], describeColumn)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	slog.Debug("sample loaded", "file", args[0], "count", len(values))

	summary := buildSummary(args[0], values)
	for _, rank := range describePercentiles {
		v, err := basicstats.Percentile(values, rank)
		if err != nil {
			return err
		}
		summary.Percentiles = append(summary.Percentiles, percentileEntry{Rank: rank, Value: v})
	}

	out := cmd.OutOrStdout()
	switch describeFormat {
	case "json":
		return printJSON(out, summary)
	case "yaml":
		return printYAML(out, summary)
	}
	printSummaryTable(out, summary)
	return nil
}

func buildSummary(file string, values []float64) *sampleSummary {
	return &sampleSummary{
		File:             file,
		Count:            len(values),
		Sum:              basicstats.Sum(values),
		Mean:             basicstats.Mean(values),
		GeoMean:          basicstats.GeoMean(values),
		Median:           basicstats.Median(values),
		FirstQuartile:    basicstats.FirstQuartile(values),
		ThirdQuartile:    basicstats.ThirdQuartile(values),
		Variance:         basicstats.Variance(values),
		StdDev:           basicstats.StdDev(values),
		CoeffOfVariation: basicstats.CoeffOfVariation(values),
		Range:            basicstats.Range(values),
		IQR:              basicstats.IQR(values),
	}
}

func printSummaryTable(w io.Writer, s *sampleSummary) {
	fmt.Fprintln(w, strings.Repeat("=", 48))
	fmt.Fprintf(w, " SAMPLE SUMMARY  %s\n", s.File)
	fmt.Fprintln(w, strings.Repeat("=", 48))

	row := func(label string, value any) {
		fmt.Fprintf(w, "  %-22s %v\n", label, value)
	}
	row("Count", s.Count)
	row("Sum", s.Sum)
	row("Mean", s.Mean)
	row("Geometric Mean", s.GeoMean)
	row("Median", s.Median)
	row("First Quartile", s.FirstQuartile)
	row("Third Quartile", s.ThirdQuartile)
	row("Variance", s.Variance)
	row("Std Deviation", s.StdDev)
	row("Coeff of Variation", s.CoeffOfVariation)
	row("Range", s.Range)
	row("IQR", s.IQR)

	if len(s.Percentiles) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 48))
		for _, p := range s.Percentiles {
			row(fmt.Sprintf("P%g", p.Rank), p.Value)
		}
	}
}
