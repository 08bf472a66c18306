package analysis

import (
	"math"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

// RecentWindowSize is the number of most recent entries behind the wellness
// score, the insights and the dashboard averages.
const RecentWindowSize = 7

type wellnessFactor struct {
	dimension models.Dimension
	target    float64
	weight    float64
}

// wellnessFactors weights sum to 100, so the score stays within [0,100]
// for non-negative inputs.
var wellnessFactors = []wellnessFactor{
	{models.DimensionSleep, 8, 20},
	{models.DimensionMood, 10, 25},
	{models.DimensionExercise, 30, 15},
	{models.DimensionWaterIntake, 8, 10},
	{models.DimensionMealQuality, 10, 15},
	{models.DimensionStudy, 4, 15},
}

// WellnessBreakdown scores the most recent RecentWindowSize entries against
// per-factor targets: each factor earns min(mean/target, 1) * weight.
func WellnessBreakdown(logs []models.DailyLog) models.WellnessScore {
	result := models.WellnessScore{Factors: []models.FactorScore{}}
	if len(logs) == 0 {
		return result
	}

	recent := RecentWindow(logs, RecentWindowSize)
	result.WindowSize = len(recent)

	var total float64
	for _, f := range wellnessFactors {
		avg := Mean(Values(recent, f.dimension))
		points := math.Min(avg/f.target, 1) * f.weight
		total += points

		result.Factors = append(result.Factors, models.FactorScore{
			Dimension: f.dimension,
			Average:   avg,
			Target:    f.target,
			Weight:    f.weight,
			Points:    points,
		})
	}

	result.Score = int(math.Round(total))
	return result
}

// WellnessScore returns the rounded composite score in [0,100], or 0 when
// there are no logs.
func WellnessScore(logs []models.DailyLog) int {
	return WellnessBreakdown(logs).Score
}
