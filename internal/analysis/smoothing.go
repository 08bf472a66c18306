package analysis

import "github.com/JonnyWalker81/wellness/backend/internal/models"

const (
	// TrendWindowShort is the window used by dashboard charts.
	TrendWindowShort = 3
	// TrendWindowWeek smooths over a full week.
	TrendWindowWeek = 7

	trendLabelLayout = "Jan 02"
)

// MovingAverage returns a copy of points where each point carries the
// trailing mean of the window values ending at it. Leading points average
// whatever is available. A window below 1 is treated as 1.
func MovingAverage(points []models.TrendPoint, window int) []models.TrendPoint {
	if window < 1 {
		window = 1
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}

	result := make([]models.TrendPoint, len(points))
	for i, p := range points {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		result[i] = p
		result[i].MovingAverage = Mean(values[start : i+1])
	}

	return result
}

// BuildTrend projects one dimension into a chronological, smoothed series.
func BuildTrend(logs []models.DailyLog, dimension models.Dimension, window int) models.TrendSeries {
	if window < 1 {
		window = 1
	}

	series := models.TrendSeries{
		Dimension: dimension,
		Window:    window,
		Points:    []models.TrendPoint{},
	}

	spec, ok := lookupDimension(dimension)
	if !ok {
		return series
	}

	sorted := sortedByDate(logs)
	points := make([]models.TrendPoint, len(sorted))
	for i, log := range sorted {
		points[i] = models.TrendPoint{
			Date:  log.LogDate,
			Label: log.LogDate.Time().Format(trendLabelLayout),
			Value: spec.value(log),
		}
	}

	series.Points = MovingAverage(points, window)
	return series
}
