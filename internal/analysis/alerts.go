package analysis

import (
	"fmt"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

type alertRule struct {
	id      string
	level   models.AlertLevel
	matches func(models.DailyLog) bool
	message func(models.DailyLog) string
}

var alertRules = []alertRule{
	{
		id:      "screenTime",
		level:   models.AlertWarning,
		matches: func(l models.DailyLog) bool { return l.ScreenTime > 6 },
		message: func(l models.DailyLog) string {
			return fmt.Sprintf("Too much screen time today! You've spent %g hrs on screens. Take a break!", l.ScreenTime)
		},
	},
	{
		id:      "sleepHours",
		level:   models.AlertWarning,
		matches: func(l models.DailyLog) bool { return l.SleepHours < 6 },
		message: func(l models.DailyLog) string {
			return fmt.Sprintf("Sleep alert! Only %g hrs of rest. Aim for at least 7-8 hrs!", l.SleepHours)
		},
	},
	{
		id:      "waterIntake",
		level:   models.AlertWarning,
		matches: func(l models.DailyLog) bool { return l.WaterIntake < 1.5 },
		message: func(l models.DailyLog) string {
			return fmt.Sprintf("Drink more water! You only had %gL today.", l.WaterIntake)
		},
	},
	{
		id:      "mealQuality",
		level:   models.AlertWarning,
		matches: func(l models.DailyLog) bool { return l.MealQuality < 3 },
		message: func(l models.DailyLog) string {
			return fmt.Sprintf("Meal quality low: %d/5. Try for a healthier meal next time.", l.MealQuality)
		},
	},
	{
		id:      "exerciseMinutes",
		level:   models.AlertInfo,
		matches: func(l models.DailyLog) bool { return l.ExerciseMinutes < 20 },
		message: func(l models.DailyLog) string {
			return fmt.Sprintf("Exercise alert! Only %g mins. Move your body!", l.ExerciseMinutes)
		},
	},
	{
		id:      "moodLow",
		level:   models.AlertWarning,
		matches: func(l models.DailyLog) bool { return l.Mood < 4 },
		message: func(l models.DailyLog) string {
			return fmt.Sprintf("Mood is low: %d/10. Take a break or do something uplifting!", l.Mood)
		},
	},
	{
		id:      "moodHigh",
		level:   models.AlertSuccess,
		matches: func(l models.DailyLog) bool { return l.Mood >= 8 },
		message: func(l models.DailyLog) string {
			return fmt.Sprintf("Great mood today: %d/10. Keep up the positivity!", l.Mood)
		},
	},
}

// DailyAlerts checks a single entry against the per-day thresholds.
func DailyAlerts(log models.DailyLog) []models.DailyAlert {
	alerts := make([]models.DailyAlert, 0)
	for _, rule := range alertRules {
		if !rule.matches(log) {
			continue
		}
		alerts = append(alerts, models.DailyAlert{
			ID:      rule.id,
			Level:   rule.level,
			Message: rule.message(log),
		})
	}
	return alerts
}
