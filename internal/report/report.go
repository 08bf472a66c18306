// Package report builds and renders period wellness reports.
package report

import (
	"errors"
	"time"

	"github.com/JonnyWalker81/wellness/backend/internal/analysis"
	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

// ErrNoData is returned when no log falls inside the report period.
var ErrNoData = errors.New("no data available for the selected period")

// Window returns the inclusive civil-day range of period ending on today.
func Window(period models.ReportPeriod, today models.Date) (start, end models.Date) {
	return today.AddDays(-(period.Days() - 1)), today
}

// Build assembles the report for the period ending on now's calendar day.
// Statistics and correlations cover only the period; streaks and the
// wellness score cover the full history.
func Build(logs []models.DailyLog, period models.ReportPeriod, now time.Time) (*models.Report, error) {
	start, end := Window(period, models.DateOf(now))

	filtered := make([]models.DailyLog, 0, len(logs))
	for _, log := range logs {
		if log.LogDate.Before(start) || log.LogDate.After(end) {
			continue
		}
		filtered = append(filtered, log)
	}
	if len(filtered) == 0 {
		return nil, ErrNoData
	}

	return &models.Report{
		Period:          period,
		GeneratedAt:     now,
		StartDate:       start,
		EndDate:         end,
		EntryCount:      len(filtered),
		WellnessScore:   analysis.WellnessScore(logs),
		CurrentStreak:   analysis.CurrentStreak(logs),
		LongestStreak:   analysis.LongestStreak(logs),
		Statistics:      analysis.DescribeAll(filtered),
		Correlations:    analysis.FindCorrelations(filtered),
		Recommendations: Recommendations(filtered),
	}, nil
}

type recommendation struct {
	dimension models.Dimension
	needsWork func(mean float64) bool
	advice    string
	fine      string
}

var recommendations = []recommendation{
	{models.DimensionSleep, func(m float64) bool { return m < 7 }, "Aim for 7-9 hours of sleep for optimal wellness", "Sleep is in the recommended range"},
	{models.DimensionExercise, func(m float64) bool { return m < 30 }, "Try to achieve 30+ minutes of exercise daily", "Exercise looks good"},
	{models.DimensionWaterIntake, func(m float64) bool { return m < 8 }, "Increase water intake to 8+ glasses per day", "Water intake looks good"},
	{models.DimensionMood, func(m float64) bool { return m < 7 }, "Consider activities that boost mood and wellbeing", "Mood looks stable"},
	{models.DimensionScreenTime, func(m float64) bool { return m > 8 }, "Reduce screen time for better mental health", "Screen time is reasonable"},
}

// Recommendations returns one line per tracked habit, either advice or an
// all-clear, based on the period means.
func Recommendations(logs []models.DailyLog) []string {
	out := make([]string, 0, len(recommendations))
	for _, r := range recommendations {
		if r.needsWork(analysis.Mean(analysis.Values(logs, r.dimension))) {
			out = append(out, r.advice)
		} else {
			out = append(out, r.fine)
		}
	}
	return out
}
