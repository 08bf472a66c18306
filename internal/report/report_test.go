package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

var now = time.Date(2024, time.March, 10, 18, 30, 0, 0, time.UTC)

func logOn(day, mood int, exercise float64) models.DailyLog {
	return models.DailyLog{
		LogDate:         models.NewDate(2024, time.March, day),
		Mood:            mood,
		ExerciseMinutes: exercise,
		SleepHours:      7.5,
		WaterIntake:     8,
		ScreenTime:      4,
	}
}

func TestWindow(t *testing.T) {
	today := models.DateOf(now)

	start, end := Window(models.ReportPeriodWeek, today)
	assert.Equal(t, models.NewDate(2024, time.March, 4), start)
	assert.Equal(t, today, end)

	start, _ = Window(models.ReportPeriodMonth, today)
	assert.Equal(t, models.NewDate(2024, time.February, 10), start)
}

func TestBuildFiltersPeriodButStreaksUseAllLogs(t *testing.T) {
	logs := []models.DailyLog{
		logOn(1, 2, 0), // outside the week
		logOn(2, 2, 0), // outside the week
		logOn(8, 5, 20),
		logOn(9, 6, 30),
		logOn(10, 7, 40),
		logOn(11, 9, 90), // after today
	}

	r, err := Build(logs, models.ReportPeriodWeek, now)
	require.NoError(t, err)

	assert.Equal(t, 3, r.EntryCount)
	assert.Equal(t, models.NewDate(2024, time.March, 4), r.StartDate)
	assert.Equal(t, models.NewDate(2024, time.March, 10), r.EndDate)
	assert.Equal(t, now, r.GeneratedAt)

	require.NotEmpty(t, r.Statistics)
	assert.Equal(t, models.DimensionMood, r.Statistics[0].Dimension)
	assert.Equal(t, 6.0, r.Statistics[0].Statistics.Mean)

	// Full history: days 8..11 are consecutive, and 1..2 form the other run.
	assert.Equal(t, 4, r.CurrentStreak)
	assert.Equal(t, 4, r.LongestStreak)

	require.NotEmpty(t, r.Correlations)
	assert.Equal(t, models.DimensionMood, r.Correlations[0].DimensionA)
	assert.Equal(t, models.DimensionExercise, r.Correlations[0].DimensionB)
}

func TestBuildNoData(t *testing.T) {
	_, err := Build([]models.DailyLog{logOn(1, 5, 0)}, models.ReportPeriodWeek, now)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Build(nil, models.ReportPeriodMonth, now)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestRecommendations(t *testing.T) {
	healthy := []models.DailyLog{{SleepHours: 8, ExerciseMinutes: 45, WaterIntake: 8, Mood: 8, ScreenTime: 3}}
	assert.Equal(t, []string{
		"Sleep is in the recommended range",
		"Exercise looks good",
		"Water intake looks good",
		"Mood looks stable",
		"Screen time is reasonable",
	}, Recommendations(healthy))

	struggling := []models.DailyLog{{SleepHours: 5, ExerciseMinutes: 10, WaterIntake: 3, Mood: 4, ScreenTime: 11}}
	assert.Equal(t, []string{
		"Aim for 7-9 hours of sleep for optimal wellness",
		"Try to achieve 30+ minutes of exercise daily",
		"Increase water intake to 8+ glasses per day",
		"Consider activities that boost mood and wellbeing",
		"Reduce screen time for better mental health",
	}, Recommendations(struggling))
}

func sampleReport(t *testing.T) *models.Report {
	t.Helper()
	r, err := Build([]models.DailyLog{logOn(8, 5, 20), logOn(9, 6, 30), logOn(10, 7, 40)}, models.ReportPeriodWeek, now)
	require.NoError(t, err)
	return r
}

func TestRenderText(t *testing.T) {
	out, err := Render(sampleReport(t), FormatText)
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "PERSONAL WELLNESS REPORT\nWeekly Summary\n"))
	assert.Contains(t, text, "Generated: March 10, 2024")
	assert.Contains(t, text, "Current Logging Streak: 3 days")
	assert.Contains(t, text, "Total Entries This Period: 3")
	assert.Contains(t, text, "1. Mood <-> Exercise")
	assert.Contains(t, text, "Coefficient: 1.000 (Strong)")
	// Mean mood of 6 falls below the threshold of 7.
	assert.Contains(t, text, "* Consider activities that boost mood and wellbeing")
	assert.NotContains(t, text, "Mood looks stable")
}

func TestRenderTextWithoutCorrelations(t *testing.T) {
	r, err := Build([]models.DailyLog{logOn(10, 5, 20)}, models.ReportPeriodMonth, now)
	require.NoError(t, err)

	text := Text(r)
	assert.Contains(t, text, "Monthly Summary")
	assert.Contains(t, text, "Not enough data to calculate correlations")
}

func TestRenderMarkdownAndHTML(t *testing.T) {
	r := sampleReport(t)

	md, err := Render(r, FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Personal Wellness Report")
	assert.Contains(t, string(md), "| Mood | 6.00 | 6.00 |")

	html, err := Render(r, FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<!DOCTYPE html>")
	assert.Contains(t, string(html), "<h1>Personal Wellness Report</h1>")
	assert.Contains(t, string(html), "<table>")
	assert.Contains(t, string(html), "<li>Consider activities that boost mood and wellbeing</li>")
}

func TestFormats(t *testing.T) {
	tests := []struct {
		in          string
		want        Format
		ext         string
		contentType string
	}{
		{"", FormatText, "txt", "text/plain; charset=utf-8"},
		{"text", FormatText, "txt", "text/plain; charset=utf-8"},
		{"md", FormatMarkdown, "md", "text/markdown; charset=utf-8"},
		{"HTML", FormatHTML, "html", "text/html; charset=utf-8"},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, f)
		assert.Equal(t, tt.ext, f.Extension())
		assert.Equal(t, tt.contentType, f.ContentType())
	}

	_, err := ParseFormat("pdf")
	assert.Error(t, err)

	assert.Equal(t, "wellness-report-week-2024-03-10.md", Filename(sampleReport(t), FormatMarkdown))
}
