package analysis

import (
	"fmt"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

const (
	// MinLogsForInsights is the number of logs needed before rules run.
	MinLogsForInsights = 3

	streakChampionDays = 7
	streakMomentumDays = 3

	sleepLowHours     = 6.0
	sleepOptimalMin   = 7.0
	sleepOptimalMax   = 9.0
	waterLowAverage   = 6.0
	screenHighAverage = 8.0
	moodThriving      = 8.0
	moodTrendRising   = 2.0
	movementMoodR     = 0.4
)

// InsightContext holds the derived metrics shared by every insight rule.
type InsightContext struct {
	LogCount     int
	Recent       []models.DailyLog
	Streak       int
	AvgSleep     float64
	AvgWater     float64
	AvgScreen    float64
	AvgMood      float64
	MoodTrend    float64
	Correlations []models.Correlation
}

// NewInsightContext derives the rule inputs: recent-window means and
// correlations over the last RecentWindowSize entries, streak over the
// full history.
func NewInsightContext(logs []models.DailyLog) *InsightContext {
	recent := RecentWindow(logs, RecentWindowSize)
	moods := Values(recent, models.DimensionMood)

	var trend float64
	if len(moods) >= 3 {
		trend = moods[len(moods)-1] - moods[0]
	}

	return &InsightContext{
		LogCount:     len(logs),
		Recent:       recent,
		Streak:       CurrentStreak(logs),
		AvgSleep:     Mean(Values(recent, models.DimensionSleep)),
		AvgWater:     Mean(Values(recent, models.DimensionWaterIntake)),
		AvgScreen:    Mean(Values(recent, models.DimensionScreenTime)),
		AvgMood:      Mean(moods),
		MoodTrend:    trend,
		Correlations: FindCorrelations(recent),
	}
}

// insightRule produces at most one insight from the shared context.
type insightRule struct {
	name     string
	evaluate func(ctx *InsightContext) (models.Insight, bool)
}

// insightRules run in this order; every matching rule contributes.
var insightRules = []insightRule{
	{"streak", streakInsight},
	{"sleep", sleepInsight},
	{"exercise-mood", movementInsight},
	{"hydration", hydrationInsight},
	{"study", studyInsight},
	{"screen-time", screenTimeInsight},
	{"mood", moodInsight},
}

// WelcomeInsight is returned alone while there are too few logs.
func WelcomeInsight() models.Insight {
	return models.Insight{
		ID:          "welcome",
		Title:       "Welcome to Your Wellness Journey",
		Description: "Start logging your daily habits to unlock personalized insights and track your progress.",
		Severity:    models.SeverityInfo,
	}
}

// GenerateInsights evaluates the rule list over the logs. With fewer than
// MinLogsForInsights logs only the welcome insight is returned.
func GenerateInsights(logs []models.DailyLog) []models.Insight {
	if len(logs) < MinLogsForInsights {
		return []models.Insight{WelcomeInsight()}
	}
	return EvaluateRules(NewInsightContext(logs))
}

// EvaluateRules runs every rule over ctx in priority order.
func EvaluateRules(ctx *InsightContext) []models.Insight {
	insights := make([]models.Insight, 0, len(insightRules))
	for _, rule := range insightRules {
		if insight, ok := rule.evaluate(ctx); ok {
			insights = append(insights, insight)
		}
	}
	return insights
}

func streakBadge(days int) string {
	return fmt.Sprintf("%d Day Streak", days)
}

func streakInsight(ctx *InsightContext) (models.Insight, bool) {
	switch {
	case ctx.Streak >= streakChampionDays:
		return models.Insight{
			ID:          "streak-champion",
			Title:       "Consistency Champion",
			Description: fmt.Sprintf("Amazing! You've maintained a %d-day logging streak. Your dedication is building lasting habits.", ctx.Streak),
			Severity:    models.SeverityPositive,
			Badge:       streakBadge(ctx.Streak),
		}, true
	case ctx.Streak >= streakMomentumDays:
		return models.Insight{
			ID:          "building-momentum",
			Title:       "Building Momentum",
			Description: fmt.Sprintf("%d days in a row! Keep it up - consistency is the key to meaningful change.", ctx.Streak),
			Severity:    models.SeverityPositive,
			Badge:       streakBadge(ctx.Streak),
		}, true
	}
	return models.Insight{}, false
}

func sleepInsight(ctx *InsightContext) (models.Insight, bool) {
	switch {
	case ctx.AvgSleep < sleepLowHours:
		return models.Insight{
			ID:          "sleep-warning",
			Title:       "Sleep Attention Needed",
			Description: fmt.Sprintf("Your average sleep is %.1f hours. Aim for 7-9 hours to improve mood and performance.", ctx.AvgSleep),
			Severity:    models.SeverityWarning,
		}, true
	case ctx.AvgSleep >= sleepOptimalMin && ctx.AvgSleep <= sleepOptimalMax:
		return models.Insight{
			ID:          "sleep-optimal",
			Title:       "Excellent Sleep Pattern",
			Description: fmt.Sprintf("Your %.1f hour average is in the optimal range. Quality rest fuels your success!", ctx.AvgSleep),
			Severity:    models.SeverityPositive,
		}, true
	}
	return models.Insight{}, false
}

func movementInsight(ctx *InsightContext) (models.Insight, bool) {
	corr, ok := FindCorrelation(ctx.Correlations, models.DimensionMood, models.DimensionExercise)
	if !ok || corr.Coefficient <= movementMoodR {
		return models.Insight{}, false
	}
	return models.Insight{
		ID:          "exercise-mood-link",
		Title:       "Movement = Happiness",
		Description: "Your data shows exercise strongly boosts your mood. Keep moving to keep smiling!",
		Severity:    models.SeverityPositive,
	}, true
}

func hydrationInsight(ctx *InsightContext) (models.Insight, bool) {
	if ctx.AvgWater >= waterLowAverage {
		return models.Insight{}, false
	}
	return models.Insight{
		ID:          "hydration-reminder",
		Title:       "Hydration Matters",
		Description: fmt.Sprintf("You're averaging %.1f glasses daily. Try reaching 8 glasses for better energy.", ctx.AvgWater),
		Severity:    models.SeverityInfo,
	}, true
}

func studyInsight(ctx *InsightContext) (models.Insight, bool) {
	if len(ctx.Recent) == 0 {
		return models.Insight{}, false
	}
	for _, log := range ctx.Recent {
		if log.StudyHours <= 0 {
			return models.Insight{}, false
		}
	}
	return models.Insight{
		ID:          "study-consistent",
		Title:       "Learning Champion",
		Description: "You studied every day this week! Your consistent effort will compound into mastery.",
		Severity:    models.SeverityPositive,
	}, true
}

func screenTimeInsight(ctx *InsightContext) (models.Insight, bool) {
	if ctx.AvgScreen <= screenHighAverage {
		return models.Insight{}, false
	}
	return models.Insight{
		ID:          "screen-time-high",
		Title:       "Digital Balance Check",
		Description: fmt.Sprintf("%.1f hours average screen time. Consider mindful breaks for better wellbeing.", ctx.AvgScreen),
		Severity:    models.SeverityWarning,
	}, true
}

func moodInsight(ctx *InsightContext) (models.Insight, bool) {
	switch {
	case ctx.AvgMood >= moodThriving:
		return models.Insight{
			ID:          "wellness-excellent",
			Title:       "Thriving State",
			Description: fmt.Sprintf("Your average mood score of %.1f/10 indicates excellent wellbeing. You're doing great!", ctx.AvgMood),
			Severity:    models.SeverityPositive,
		}, true
	case ctx.MoodTrend > moodTrendRising:
		return models.Insight{
			ID:          "mood-improving",
			Title:       "Positive Trajectory",
			Description: "Your mood has been improving! Your healthy habits are paying off.",
			Severity:    models.SeverityPositive,
		}, true
	}
	return models.Insight{}, false
}
