package analysis

import (
	"sort"
	"strings"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

// dimensionSpec binds a dimension to a typed accessor over a log entry.
type dimensionSpec struct {
	dimension models.Dimension
	value     func(models.DailyLog) float64
}

// project extracts one value per log, preserving index order.
func (d dimensionSpec) project(logs []models.DailyLog) []float64 {
	values := make([]float64, len(logs))
	for i, log := range logs {
		values[i] = d.value(log)
	}
	return values
}

// trackedDimensions is the fixed, ordered set of correlated dimensions.
// Correlation pairs are enumerated i < j over this order.
var trackedDimensions = []dimensionSpec{
	{models.DimensionMood, func(l models.DailyLog) float64 { return float64(l.Mood) }},
	{models.DimensionSleep, func(l models.DailyLog) float64 { return l.SleepHours }},
	{models.DimensionExercise, func(l models.DailyLog) float64 { return l.ExerciseMinutes }},
	{models.DimensionStudy, func(l models.DailyLog) float64 { return l.StudyHours }},
	{models.DimensionScreenTime, func(l models.DailyLog) float64 { return l.ScreenTime }},
	{models.DimensionWaterIntake, func(l models.DailyLog) float64 { return l.WaterIntake }},
	{models.DimensionMealQuality, func(l models.DailyLog) float64 { return float64(l.MealQuality) }},
}

// Dimensions returns the tracked dimensions in table order.
func Dimensions() []models.Dimension {
	dims := make([]models.Dimension, len(trackedDimensions))
	for i, spec := range trackedDimensions {
		dims[i] = spec.dimension
	}
	return dims
}

// lookupDimension finds the accessor for a dimension.
func lookupDimension(d models.Dimension) (dimensionSpec, bool) {
	for _, spec := range trackedDimensions {
		if spec.dimension == d {
			return spec, true
		}
	}
	return dimensionSpec{}, false
}

// ParseDimension matches a dimension by display name or snake_case key,
// e.g. "Screen Time" or "screen_time".
func ParseDimension(s string) (models.Dimension, bool) {
	for _, spec := range trackedDimensions {
		if string(spec.dimension) == s || dimensionKey(spec.dimension) == s {
			return spec.dimension, true
		}
	}
	return "", false
}

// Values projects one dimension out of the logs in their given order.
// Unknown dimensions yield nil.
func Values(logs []models.DailyLog, d models.Dimension) []float64 {
	spec, ok := lookupDimension(d)
	if !ok {
		return nil
	}
	return spec.project(logs)
}

func dimensionKey(d models.Dimension) string {
	return strings.ReplaceAll(strings.ToLower(string(d)), " ", "_")
}

// sortedByDate returns a copy of logs in ascending date order. The sort is
// stable so same-day entries keep their relative input order.
func sortedByDate(logs []models.DailyLog) []models.DailyLog {
	sorted := make([]models.DailyLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LogDate.Before(sorted[j].LogDate)
	})
	return sorted
}

// RecentWindow returns the n most recent entries, oldest first.
func RecentWindow(logs []models.DailyLog, n int) []models.DailyLog {
	sorted := sortedByDate(logs)
	if n >= 0 && len(sorted) > n {
		return sorted[len(sorted)-n:]
	}
	return sorted
}
