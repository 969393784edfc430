// Package time provides robust statistics over time-ordered sample values.
package time

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Median returns the median of values. For an even count it returns the mean
// of the two middle values. NaN entries propagate; an empty input yields NaN.
// values is not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	if floats.HasNaN(values) {
		return math.NaN()
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}

	return 0.5 * (sorted[mid-1] + sorted[mid])
}

// Diff returns the first differences x[i+1]-x[i]. The result has len(x)-1
// elements, or is nil for fewer than two samples.
func Diff(x []float64) []float64 {
	if len(x) < 2 {
		return nil
	}

	out := make([]float64, len(x)-1)
	floats.SubTo(out, x[1:], x[:len(x)-1])

	return out
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Sum(x) / float64(len(x))
}

// RemoveMean subtracts the mean of x from every element in place and returns
// the subtracted mean.
func RemoveMean(x []float64) float64 {
	m := Mean(x)
	if m != 0 {
		floats.AddConst(-m, x)
	}
	return m
}
