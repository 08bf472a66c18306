package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

func alertIDs(alerts []models.DailyAlert) []string {
	ids := make([]string, len(alerts))
	for i, a := range alerts {
		ids[i] = a.ID
	}
	return ids
}

func TestDailyAlertsHealthyDay(t *testing.T) {
	log := models.DailyLog{
		ScreenTime:      3,
		SleepHours:      8,
		WaterIntake:     2,
		MealQuality:     4,
		ExerciseMinutes: 45,
		Mood:            6,
	}

	alerts := DailyAlerts(log)

	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestDailyAlertsEveryWarning(t *testing.T) {
	log := models.DailyLog{
		ScreenTime:      9,
		SleepHours:      5,
		WaterIntake:     1,
		MealQuality:     2,
		ExerciseMinutes: 10,
		Mood:            3,
	}

	alerts := DailyAlerts(log)

	assert.Equal(t, []string{"screenTime", "sleepHours", "waterIntake", "mealQuality", "exerciseMinutes", "moodLow"}, alertIDs(alerts))
	assert.Equal(t, models.AlertWarning, alerts[0].Level)
	assert.Equal(t, models.AlertInfo, alerts[4].Level)
	assert.Contains(t, alerts[0].Message, "9 hrs")
	assert.Contains(t, alerts[3].Message, "2/5")
}

func TestDailyAlertsThresholdEdges(t *testing.T) {
	// Every value sits exactly on its threshold.
	log := models.DailyLog{
		ScreenTime:      6,
		SleepHours:      6,
		WaterIntake:     1.5,
		MealQuality:     3,
		ExerciseMinutes: 20,
		Mood:            8,
	}

	alerts := DailyAlerts(log)

	require.Len(t, alerts, 1)
	assert.Equal(t, "moodHigh", alerts[0].ID)
	assert.Equal(t, models.AlertSuccess, alerts[0].Level)
	assert.Contains(t, alerts[0].Message, "8/10")
}
