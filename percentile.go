package basicstats

import (
	"errors"
	"fmt"
	"math"
)

// ErrRankOutOfRange reports a percentile rank outside [0, 100].
var ErrRankOutOfRange = errors.New("percentile rank must be within [0, 100]")

// Percentile returns the value at the given percentile rank using linear
// interpolation between closest ranks (the "inclusive", or R-7, method).
// An empty sample returns 0 regardless of rank; a rank outside [0, 100] on
// a non-empty sample is an error.
func Percentile[T Number](sample []T, rank float64) (float64, error) {
	if len(sample) == 0 {
		return 0, nil
	}
	if rank < 0 || rank > 100 {
		return 0, fmt.Errorf("percentile rank %v: %w", rank, ErrRankOutOfRange)
	}

	sorted := sortedCopy(sample)
	pos := rank / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if upper >= len(sorted) {
		// Rounding can push the upper index past the end when rank is 100.
		return float64(sorted[lower]), nil
	}
	weight := pos - float64(lower)
	lo := float64(sorted[lower])
	return lo + weight*(float64(sorted[upper])-lo), nil
}
