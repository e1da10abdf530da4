package basicstats

import (
	"errors"
	"fmt"
	"math/rand"
)

// Statistic reduces a sample to a single number. Mean, Median, Sum and the
// other aggregates in this package satisfy it directly.
type Statistic[T Number] func([]T) float64

// Interval holds the result of a bootstrap confidence interval computation:
// Low <= High bound the central ConfidenceLevel percent of the bootstrapped
// statistic's distribution.
type Interval struct {
	Low             float64 `json:"low" yaml:"low"`
	High            float64 `json:"high" yaml:"high"`
	ConfidenceLevel float64 `json:"confidence_level" yaml:"confidence_level"`
	Iterations      int     `json:"iterations" yaml:"iterations"`
}

// DefaultBootstrapIterations is the number of bootstrap resamples drawn when
// the caller does not choose a count.
const DefaultBootstrapIterations = 1024

// ErrConfidenceLevelOutOfRange reports a confidence level outside the open
// interval (0, 100).
var ErrConfidenceLevelOutOfRange = errors.New("confidence level must be within (0, 100)")

// Resample draws a new sample of the same length as sample by selecting
// elements uniformly at random with replacement. Duplicates are expected and
// some source elements may be omitted. An empty input yields an empty output
// without drawing.
func Resample[T Number](sample []T) []T {
	return ResampleWithSeed(sample, -1)
}

// ResampleWithSeed is like Resample but accepts a seed for reproducibility.
// A negative seed uses a non-deterministic source.
func ResampleWithSeed[T Number](sample []T, seed int64) []T {
	return resample(sample, newRand(seed))
}

// BootstrapCI estimates a two-tailed confidence interval for stat over
// sample using the bootstrap percentile method: sample is resampled
// DefaultBootstrapIterations times, stat is applied to each resample, and
// the bounds are the (100−level)/2 and 100−(100−level)/2 percentiles of the
// collected results. level is a percentage in the open interval (0, 100),
// so a 95% interval uses the 2.5th and 97.5th percentiles. An empty sample
// yields a zero interval without iterating.
func BootstrapCI[T Number](sample []T, stat Statistic[T], level float64) (Interval, error) {
	return BootstrapCIWithSeed(sample, stat, level, DefaultBootstrapIterations, -1)
}

// BootstrapCIWithSeed is like BootstrapCI but accepts an iteration count and
// a seed. iterations <= 0 falls back to DefaultBootstrapIterations; a
// negative seed uses a non-deterministic source.
func BootstrapCIWithSeed[T Number](sample []T, stat Statistic[T], level float64, iterations int, seed int64) (Interval, error) {
	if level <= 0 || level >= 100 {
		return Interval{}, fmt.Errorf("confidence level %v: %w", level, ErrConfidenceLevelOutOfRange)
	}
	if len(sample) == 0 {
		return Interval{ConfidenceLevel: level}, nil
	}
	if iterations <= 0 {
		iterations = DefaultBootstrapIterations
	}

	rng := newRand(seed)
	results := make([]float64, iterations)
	for i := range results {
		results[i] = stat(resample(sample, rng))
	}
	return intervalOf(results, level)
}

// BootstrapDiffCI estimates a confidence interval for the difference
// stat(sample1) − stat(sample2) by independently resampling both inputs on
// each iteration and collecting the difference of the two statistics.
// Either input empty yields a zero interval without iterating.
func BootstrapDiffCI[T Number](sample1, sample2 []T, stat Statistic[T], level float64) (Interval, error) {
	return BootstrapDiffCIWithSeed(sample1, sample2, stat, level, DefaultBootstrapIterations, -1)
}

// BootstrapDiffCIWithSeed is like BootstrapDiffCI but accepts an iteration
// count and a seed, with the same conventions as BootstrapCIWithSeed.
func BootstrapDiffCIWithSeed[T Number](sample1, sample2 []T, stat Statistic[T], level float64, iterations int, seed int64) (Interval, error) {
	if level <= 0 || level >= 100 {
		return Interval{}, fmt.Errorf("confidence level %v: %w", level, ErrConfidenceLevelOutOfRange)
	}
	if len(sample1) == 0 || len(sample2) == 0 {
		return Interval{ConfidenceLevel: level}, nil
	}
	if iterations <= 0 {
		iterations = DefaultBootstrapIterations
	}

	rng := newRand(seed)
	results := make([]float64, iterations)
	for i := range results {
		results[i] = stat(resample(sample1, rng)) - stat(resample(sample2, rng))
	}
	return intervalOf(results, level)
}

// intervalOf extracts the symmetric two-tailed interval from the collected
// bootstrap results using the same interpolation rule as Percentile.
func intervalOf(results []float64, level float64) (Interval, error) {
	tail := (100 - level) / 2
	low, err := Percentile(results, tail)
	if err != nil {
		return Interval{}, err
	}
	high, err := Percentile(results, 100-tail)
	if err != nil {
		return Interval{}, err
	}
	return Interval{
		Low:             low,
		High:            high,
		ConfidenceLevel: level,
		Iterations:      len(results),
	}, nil
}

func resample[T Number](sample []T, rng *rand.Rand) []T {
	out := make([]T, len(sample))
	for i := range out {
		out[i] = sample[rng.Intn(len(sample))]
	}
	return out
}

func newRand(seed int64) *rand.Rand {
	if seed >= 0 {
		return rand.New(rand.NewSource(seed))
	}
	return rand.New(rand.NewSource(rand.Int63()))
}
