package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

// quietDay triggers no rule other than the streak.
func quietDay(_ int, l *models.DailyLog) {
	l.SleepHours = 6.5
	l.WaterIntake = 6
	l.ScreenTime = 5
	l.Mood = 6
	l.ExerciseMinutes = 20
}

func insightIDs(insights []models.Insight) []string {
	ids := make([]string, len(insights))
	for i, in := range insights {
		ids[i] = in.ID
	}
	return ids
}

func TestGenerateInsightsWelcome(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		insights := GenerateInsights(consecutiveLogs(day(1), n, quietDay))

		require.Len(t, insights, 1, "n=%d", n)
		assert.Equal(t, "welcome", insights[0].ID)
		assert.Equal(t, models.SeverityInfo, insights[0].Severity)
	}
}

func TestGenerateInsightsStreakChampion(t *testing.T) {
	insights := GenerateInsights(consecutiveLogs(day(1), 7, quietDay))

	require.Len(t, insights, 1)
	assert.Equal(t, "streak-champion", insights[0].ID)
	assert.Equal(t, "7 Day Streak", insights[0].Badge)
	assert.Equal(t, models.SeverityPositive, insights[0].Severity)
}

func TestGenerateInsightsBuildingMomentum(t *testing.T) {
	insights := GenerateInsights(consecutiveLogs(day(1), 4, quietDay))

	assert.Equal(t, []string{"building-momentum"}, insightIDs(insights))
	assert.Equal(t, "4 Day Streak", insights[0].Badge)
}

func TestGenerateInsightsRuleOrder(t *testing.T) {
	// Every rule fires: short sleep, low water, daily study, heavy screens,
	// mood tracking exercise and a mood at the thriving level.
	logs := consecutiveLogs(day(1), 7, func(i int, l *models.DailyLog) {
		l.SleepHours = 5
		l.WaterIntake = 3
		l.StudyHours = 1
		l.ScreenTime = 10
		l.Mood = 8 + i%3
		l.ExerciseMinutes = float64(10 * (8 + i%3))
	})

	insights := GenerateInsights(logs)

	assert.Equal(t, []string{
		"streak-champion",
		"sleep-warning",
		"exercise-mood-link",
		"hydration-reminder",
		"study-consistent",
		"screen-time-high",
		"wellness-excellent",
	}, insightIDs(insights))
}

func TestInsightRules(t *testing.T) {
	tests := []struct {
		rule   string
		ctx    InsightContext
		wantID string
	}{
		{rule: "streak", ctx: InsightContext{Streak: 2}},
		{rule: "streak", ctx: InsightContext{Streak: 3}, wantID: "building-momentum"},
		{rule: "streak", ctx: InsightContext{Streak: 12}, wantID: "streak-champion"},
		{rule: "sleep", ctx: InsightContext{AvgSleep: 5.9}, wantID: "sleep-warning"},
		{rule: "sleep", ctx: InsightContext{AvgSleep: 6.5}},
		{rule: "sleep", ctx: InsightContext{AvgSleep: 7}, wantID: "sleep-optimal"},
		{rule: "sleep", ctx: InsightContext{AvgSleep: 9}, wantID: "sleep-optimal"},
		{rule: "sleep", ctx: InsightContext{AvgSleep: 9.5}},
		{rule: "hydration", ctx: InsightContext{AvgWater: 5.9}, wantID: "hydration-reminder"},
		{rule: "hydration", ctx: InsightContext{AvgWater: 6}},
		{rule: "screen-time", ctx: InsightContext{AvgScreen: 8}},
		{rule: "screen-time", ctx: InsightContext{AvgScreen: 8.1}, wantID: "screen-time-high"},
		{rule: "mood", ctx: InsightContext{AvgMood: 8}, wantID: "wellness-excellent"},
		{rule: "mood", ctx: InsightContext{AvgMood: 6, MoodTrend: 3}, wantID: "mood-improving"},
		{rule: "mood", ctx: InsightContext{AvgMood: 9, MoodTrend: 3}, wantID: "wellness-excellent"},
		{rule: "mood", ctx: InsightContext{AvgMood: 6, MoodTrend: 2}},
		{rule: "study", ctx: InsightContext{}},
		{rule: "study", ctx: InsightContext{Recent: []models.DailyLog{{StudyHours: 1}, {StudyHours: 0}}}},
		{rule: "study", ctx: InsightContext{Recent: []models.DailyLog{{StudyHours: 1}, {StudyHours: 0.5}}}, wantID: "study-consistent"},
		{
			rule: "exercise-mood",
			ctx: InsightContext{Correlations: []models.Correlation{
				{DimensionA: models.DimensionMood, DimensionB: models.DimensionExercise, Coefficient: 0.4},
			}},
		},
		{
			rule: "exercise-mood",
			ctx: InsightContext{Correlations: []models.Correlation{
				{DimensionA: models.DimensionMood, DimensionB: models.DimensionExercise, Coefficient: 0.55},
			}},
			wantID: "exercise-mood-link",
		},
	}

	for _, tt := range tests {
		rule := ruleNamed(t, tt.rule)
		insight, ok := rule.evaluate(&tt.ctx)
		if tt.wantID == "" {
			assert.False(t, ok, "%s: unexpected %q", tt.rule, insight.ID)
			continue
		}
		if assert.True(t, ok, "%s: expected %q", tt.rule, tt.wantID) {
			assert.Equal(t, tt.wantID, insight.ID)
			assert.NotEmpty(t, insight.Title)
			assert.NotEmpty(t, insight.Description)
		}
	}
}

func TestNewInsightContextUsesRecentWindow(t *testing.T) {
	// Ten days of rising mood, sleep 4h for the first three, 8h afterwards.
	logs := consecutiveLogs(day(1), 10, func(i int, l *models.DailyLog) {
		l.Mood = i + 1
		l.SleepHours = 8
		if i < 3 {
			l.SleepHours = 4
		}
	})

	ctx := NewInsightContext(logs)

	assert.Equal(t, 10, ctx.LogCount)
	assert.Len(t, ctx.Recent, RecentWindowSize)
	assert.Equal(t, 10, ctx.Streak)
	assert.Equal(t, 8.0, ctx.AvgSleep)
	assert.Equal(t, 7.0, ctx.AvgMood)
	assert.Equal(t, 6.0, ctx.MoodTrend)
}

func TestNewInsightContextShortTrend(t *testing.T) {
	ctx := NewInsightContext(consecutiveLogs(day(1), 2, func(i int, l *models.DailyLog) {
		l.Mood = 1 + 8*i
	}))

	assert.Zero(t, ctx.MoodTrend)
	assert.Empty(t, ctx.Correlations)
}

func TestGenerateInsightsIsIdempotent(t *testing.T) {
	logs := consecutiveLogs(day(1), 9, func(i int, l *models.DailyLog) {
		l.Mood = 3 + i%5
		l.SleepHours = 7 + float64(i%2)
		l.ExerciseMinutes = float64(15 * (i % 4))
		l.WaterIntake = 5
	})
	logs[0], logs[8] = logs[8], logs[0]
	snapshot := append([]models.DailyLog(nil), logs...)

	first := GenerateInsights(logs)
	second := GenerateInsights(logs)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, logs)
}

func ruleNamed(t *testing.T, name string) insightRule {
	t.Helper()
	for _, r := range insightRules {
		if r.name == name {
			return r
		}
	}
	t.Fatalf("no insight rule named %q", name)
	return insightRule{}
}
