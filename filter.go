package basicstats

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch reports parallel slices of unequal length.
var ErrLengthMismatch = errors.New("sample and criteria must have the same length")

// Filter returns the elements of sample for which keep returns true, in
// their original order. The input is never modified.
func Filter[T Number](sample []T, keep func(T) bool) []T {
	result := make([]T, 0, len(sample))
	for _, v := range sample {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}

// FilterBy returns the elements of sample whose co-indexed criteria element
// satisfies keep, in their original order. sample and criteria are parallel
// slices and must have the same length.
func FilterBy[T Number](sample, criteria []T, keep func(T) bool) ([]T, error) {
	if len(sample) != len(criteria) {
		return nil, fmt.Errorf("sample has %d elements, criteria has %d: %w",
			len(sample), len(criteria), ErrLengthMismatch)
	}
	result := make([]T, 0, len(sample))
	for i, c := range criteria {
		if keep(c) {
			result = append(result, sample[i])
		}
	}
	return result, nil
}
