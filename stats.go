// Package basicstats provides descriptive statistics over in-memory numeric
// samples: sums and means, quartiles, dispersion measures, interpolated
// percentiles, predicate filtering, and bootstrap confidence intervals.
//
// Every function treats its input as read-only; functions that need sorted
// data sort a private copy. Aggregate functions return 0 for an empty sample
// rather than an error, so callers that need to distinguish "no data" from a
// legitimate zero must check the sample length themselves.
package basicstats

import (
	"math"
	"slices"
)

// Number is the element constraint for every statistic in this package.
// Results are always computed in float64 regardless of the element type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Sum returns the arithmetic sum of sample. Returns 0 for empty input.
func Sum[T Number](sample []T) float64 {
	var total float64
	for _, v := range sample {
		total += float64(v)
	}
	return total
}

// Mean returns the arithmetic mean of sample. Returns 0 for empty input.
func Mean[T Number](sample []T) float64 {
	if len(sample) == 0 {
		return 0
	}
	return Sum(sample) / float64(len(sample))
}

// GeoMean returns the geometric mean of sample: the product of all elements
// raised to the power 1/n. Returns 0 for empty input. Elements are assumed
// positive; non-positive elements produce NaN or meaningless results without
// validation.
func GeoMean[T Number](sample []T) float64 {
	if len(sample) == 0 {
		return 0
	}
	product := 1.0
	for _, v := range sample {
		product *= float64(v)
	}
	return math.Pow(product, 1/float64(len(sample)))
}

// Median returns the middle value of the sorted sample, or the average of
// the two middle values when the count is even. Returns 0 for empty input.
func Median[T Number](sample []T) float64 {
	if len(sample) == 0 {
		return 0
	}
	sorted := sortedCopy(sample)
	n := len(sorted)
	if n%2 == 0 {
		return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
	}
	return float64(sorted[n/2])
}

// FirstQuartile returns the median of the lower half of the sorted sample.
// For an odd count the middle element is part of the lower half.
// Returns 0 for empty input.
func FirstQuartile[T Number](sample []T) float64 {
	if len(sample) == 0 {
		return 0
	}
	sorted := sortedCopy(sample)
	n := len(sorted)
	if n%2 == 0 {
		return Median(sorted[:n/2])
	}
	return Median(sorted[:n/2+1])
}

// ThirdQuartile returns the median of the upper half of the sorted sample.
// For an odd count the middle element is excluded from the upper half.
// Returns 0 for empty input.
func ThirdQuartile[T Number](sample []T) float64 {
	if len(sample) == 0 {
		return 0
	}
	sorted := sortedCopy(sample)
	n := len(sorted)
	if n%2 == 0 {
		return Median(sorted[n/2:])
	}
	return Median(sorted[n/2+1:])
}

// Variance returns the population variance of sample (divides by n, not
// n-1). Returns 0 for empty input.
func Variance[T Number](sample []T) float64 {
	if len(sample) == 0 {
		return 0
	}
	m := Mean(sample)
	var sumSq float64
	for _, v := range sample {
		d := float64(v) - m
		sumSq += d * d
	}
	return sumSq / float64(len(sample))
}

// StdDev returns the population standard deviation of sample.
func StdDev[T Number](sample []T) float64 {
	return math.Sqrt(Variance(sample))
}

// CoeffOfVariation returns StdDev divided by Mean. Returns 0 for empty
// input. A zero mean on non-empty input yields ±Inf or NaN without
// validation.
func CoeffOfVariation[T Number](sample []T) float64 {
	if len(sample) == 0 {
		return 0
	}
	return StdDev(sample) / Mean(sample)
}

// Range returns max − min of sample. Returns 0 for empty input.
func Range[T Number](sample []T) float64 {
	if len(sample) == 0 {
		return 0
	}
	return float64(slices.Max(sample)) - float64(slices.Min(sample))
}

// IQR returns the interquartile range, ThirdQuartile − FirstQuartile.
// Returns 0 for empty input.
func IQR[T Number](sample []T) float64 {
	if len(sample) == 0 {
		return 0
	}
	return ThirdQuartile(sample) - FirstQuartile(sample)
}

func sortedCopy[T Number](sample []T) []T {
	sorted := slices.Clone(sample)
	slices.Sort(sorted)
	return sorted
}
