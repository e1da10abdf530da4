package main

import (
	"fmt"
	"math"

	basicstats "github.com/edwardlc0000/BasicStats"
	"github.com/edwardlc0000/BasicStats/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	filterMin      float64
	filterMax      float64
	filterColumn   string
	filterBy       string
	filterByColumn string
)

func newFilterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter <file>",
		Short: "Filter a numeric sample by value bounds",
		Long: `Print the elements of a sample that fall within [min, max], one per line,
in their original order.

With --by, the bounds are applied to a parallel criteria sample instead:
element i of <file> is kept when element i of the criteria sample is within
bounds. The two samples must have the same length.`,
		Args: cobra.ExactArgs(1),
		RunE: filterCommandE,
	}

	cmd.Flags().Float64Var(&filterMin, "min", math.Inf(-1), "Keep values >= min")
	cmd.Flags().Float64Var(&filterMax, "max", math.Inf(1), "Keep values <= max")
	cmd.Flags().StringVarP(&filterColumn, "column", "c", "", "CSV column to read (defaults to the first column)")
	cmd.Flags().StringVar(&filterBy, "by", "", "File holding a parallel criteria sample")
	cmd.Flags().StringVar(&filterByColumn, "by-column", "", "CSV column of the criteria sample")

	return cmd
}

func filterCommandE(cmd *cobra.Command, args []string) error {
	values, err := dataset.Load(args[0], filterColumn)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	within := func(v float64) bool { return v >= filterMin && v <= filterMax }

	var kept []float64
	if filterBy != "" {
		criteria, err := dataset.Load(filterBy, filterByColumn)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", filterBy, err)
		}
		kept, err = basicstats.FilterBy(values, criteria, within)
		if err != nil {
			return err
		}
	} else {
		kept = basicstats.Filter(values, within)
	}

	out := cmd.OutOrStdout()
	for _, v := range kept {
		fmt.Fprintf(out, "%g\n", v)
	}
	return nil
}
