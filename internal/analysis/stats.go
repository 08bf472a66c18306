// Package analysis is the statistics and insights engine behind the
// dashboard and reports.
//
// Every function here is pure: it reads the slice it is given, never
// mutates it, and never fails. Empty or undersized samples collapse to
// zero values instead of errors. Callers are responsible for supplying
// well-formed samples; NaN or negative inputs are not validated and give
// meaningless results.
package analysis

import (
	"math"
	"sort"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

// Mean returns the arithmetic mean, or 0 for an empty sample.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the middle value of the sorted sample, averaging the two
// central values when the length is even. 0 for an empty sample.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Variance returns the population variance (divides by N), or 0 for an
// empty sample.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / float64(len(values))
}

// StdDev returns the population standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Describe computes all descriptive statistics of a sample at once.
func Describe(values []float64) models.Statistics {
	stats := models.Statistics{
		Count:    len(values),
		Mean:     Mean(values),
		Median:   Median(values),
		Variance: Variance(values),
		StdDev:   StdDev(values),
	}

	for i, v := range values {
		if i == 0 || v < stats.Min {
			stats.Min = v
		}
		if i == 0 || v > stats.Max {
			stats.Max = v
		}
	}

	return stats
}

// DescribeAll computes statistics for every tracked dimension, in table order.
func DescribeAll(logs []models.DailyLog) []models.DimensionStatistics {
	result := make([]models.DimensionStatistics, 0, len(trackedDimensions))
	for _, spec := range trackedDimensions {
		result = append(result, models.DimensionStatistics{
			Dimension:  spec.dimension,
			Statistics: Describe(spec.project(logs)),
		})
	}
	return result
}
