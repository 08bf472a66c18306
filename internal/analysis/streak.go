package analysis

import (
	"sort"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

// CurrentStreak counts consecutive calendar days walking backward from the
// most recent entry. The most recent entry always counts, whether or not it
// is today. A second entry on an already counted day neither extends nor
// breaks the streak. Returns 0 only for empty input.
func CurrentStreak(logs []models.DailyLog) int {
	if len(logs) == 0 {
		return 0
	}

	dates := logDates(logs)
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	streak := 1
	prev := dates[0]
	for _, d := range dates[1:] {
		gap := prev.DaysSince(d)
		if gap > 1 {
			break // streak broken
		}
		if gap == 1 {
			streak++
		}
		prev = d
	}

	return streak
}

// LongestStreak returns the longest run of consecutive calendar days
// anywhere in the history, with duplicate days counted once.
func LongestStreak(logs []models.DailyLog) int {
	if len(logs) == 0 {
		return 0
	}

	dates := logDates(logs)
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest, current := 1, 1
	for i := 1; i < len(dates); i++ {
		switch gap := dates[i].DaysSince(dates[i-1]); {
		case gap == 0:
			continue
		case gap == 1:
			current++
		default:
			current = 1
		}
		if current > longest {
			longest = current
		}
	}

	return longest
}

func logDates(logs []models.DailyLog) []models.Date {
	dates := make([]models.Date, len(logs))
	for i, log := range logs {
		dates[i] = log.LogDate
	}
	return dates
}
