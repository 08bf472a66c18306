package analysis

import (
	"math"
	"sort"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

const (
	// MinLogsForCorrelation is the minimum number of logs before any
	// correlation is computed.
	MinLogsForCorrelation = 3

	// CorrelationReportThreshold is the minimum |r| a pair needs to be returned.
	CorrelationReportThreshold = 0.3

	// Strength buckets by |r|
	CorrelationThresholdStrong   = 0.7
	CorrelationThresholdModerate = 0.4
	CorrelationThresholdWeak     = 0.2
)

// PearsonCorrelation computes the Pearson correlation coefficient of two
// index-aligned samples. It returns 0 when the lengths differ, the samples
// are empty, or either sample is constant.
func PearsonCorrelation(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var numerator, denomX, denomY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		numerator += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}

	if denomX == 0 || denomY == 0 {
		return 0 // No variance, no correlation
	}

	return numerator / math.Sqrt(denomX*denomY)
}

// CorrelationStrength buckets a coefficient by its magnitude.
func CorrelationStrength(r float64) models.CorrelationStrength {
	abs := math.Abs(r)
	switch {
	case abs >= CorrelationThresholdStrong:
		return models.StrengthStrong
	case abs >= CorrelationThresholdModerate:
		return models.StrengthModerate
	case abs >= CorrelationThresholdWeak:
		return models.StrengthWeak
	default:
		return models.StrengthVeryWeak
	}
}

// correlationPValue approximates the two-tailed p-value of r over n samples
// using the normal approximation of the t statistic.
func correlationPValue(r float64, n int) float64 {
	if math.Abs(r) >= 1.0 {
		return 0
	}
	if n < 3 {
		return 1
	}
	t := r * math.Sqrt(float64(n-2)/(1-r*r))
	return 2 * (1 - normalCDF(math.Abs(t)))
}

// normalCDF calculates the cumulative distribution function for standard normal
func normalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt(2)))
}

func correlationDirection(r float64) models.Direction {
	switch {
	case r > 0:
		return models.DirectionPositive
	case r < 0:
		return models.DirectionNegative
	default:
		return models.DirectionNeutral
	}
}

// FindCorrelations correlates every unordered pair of tracked dimensions
// and returns the pairs with |r| >= CorrelationReportThreshold, strongest
// first. Ties keep pair enumeration order. Values are paired by index,
// not by date. Fewer than MinLogsForCorrelation logs yield an empty slice.
func FindCorrelations(logs []models.DailyLog) []models.Correlation {
	correlations := make([]models.Correlation, 0)
	if len(logs) < MinLogsForCorrelation {
		return correlations
	}

	projections := make([][]float64, len(trackedDimensions))
	for i, spec := range trackedDimensions {
		projections[i] = spec.project(logs)
	}

	for i := 0; i < len(trackedDimensions); i++ {
		for j := i + 1; j < len(trackedDimensions); j++ {
			r := PearsonCorrelation(projections[i], projections[j])
			if math.Abs(r) < CorrelationReportThreshold {
				continue
			}

			correlations = append(correlations, models.Correlation{
				DimensionA:  trackedDimensions[i].dimension,
				DimensionB:  trackedDimensions[j].dimension,
				Coefficient: r,
				Strength:    CorrelationStrength(r),
				Direction:   correlationDirection(r),
				PValue:      correlationPValue(r, len(logs)),
				SampleSize:  len(logs),
			})
		}
	}

	// Sort by absolute correlation value (strongest first)
	sort.SliceStable(correlations, func(i, j int) bool {
		return math.Abs(correlations[i].Coefficient) > math.Abs(correlations[j].Coefficient)
	})

	return correlations
}

// FindCorrelation returns the reported correlation between a and b, if any.
func FindCorrelation(correlations []models.Correlation, a, b models.Dimension) (models.Correlation, bool) {
	for _, c := range correlations {
		if c.Involves(a, b) {
			return c, true
		}
	}
	return models.Correlation{}, false
}
