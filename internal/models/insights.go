package models

import "time"

// Dimension identifies one tracked habit metric.
type Dimension string

const (
	DimensionMood        Dimension = "Mood"
	DimensionSleep       Dimension = "Sleep"
	DimensionExercise    Dimension = "Exercise"
	DimensionStudy       Dimension = "Study"
	DimensionScreenTime  Dimension = "Screen Time"
	DimensionWaterIntake Dimension = "Water Intake"
	DimensionMealQuality Dimension = "Meal Quality"
)

// CorrelationStrength is the qualitative bucket of a correlation coefficient.
type CorrelationStrength string

const (
	StrengthStrong   CorrelationStrength = "Strong"
	StrengthModerate CorrelationStrength = "Moderate"
	StrengthWeak     CorrelationStrength = "Weak"
	StrengthVeryWeak CorrelationStrength = "Very Weak"
)

// Direction represents the direction of a correlation
type Direction string

const (
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
	DirectionNeutral  Direction = "neutral"
)

// Severity tags an insight for presentation.
type Severity string

const (
	SeverityPositive Severity = "positive"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// AlertLevel tags a per-entry alert.
type AlertLevel string

const (
	AlertInfo    AlertLevel = "info"
	AlertWarning AlertLevel = "warning"
	AlertSuccess AlertLevel = "success"
)

// Statistics holds descriptive statistics over one numeric sample.
type Statistics struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// DimensionStatistics pairs a dimension with its statistics.
type DimensionStatistics struct {
	Dimension  Dimension  `json:"dimension"`
	Statistics Statistics `json:"statistics"`
}

// TrendPoint is one chronological value of a chart series.
type TrendPoint struct {
	Date          Date    `json:"date"`
	Label         string  `json:"label"`
	Value         float64 `json:"value"`
	MovingAverage float64 `json:"moving_average"`
}

// TrendSeries is a smoothed series for a single dimension.
type TrendSeries struct {
	Dimension Dimension    `json:"dimension"`
	Window    int          `json:"window"`
	Points    []TrendPoint `json:"points"`
}

// Correlation holds the Pearson correlation between two dimensions.
type Correlation struct {
	DimensionA  Dimension           `json:"dimension_a"`
	DimensionB  Dimension           `json:"dimension_b"`
	Coefficient float64             `json:"coefficient"` // Pearson r value (-1 to 1)
	Strength    CorrelationStrength `json:"strength"`
	Direction   Direction           `json:"direction"`
	PValue      float64             `json:"p_value"`     // informational, normal approximation
	SampleSize  int                 `json:"sample_size"` // number of aligned logs
}

// Involves reports whether the correlation pairs a and b in either order.
func (c Correlation) Involves(a, b Dimension) bool {
	return (c.DimensionA == a && c.DimensionB == b) || (c.DimensionA == b && c.DimensionB == a)
}

// Insight is a human-readable observation derived from the logs.
type Insight struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Badge       string   `json:"badge,omitempty"`
}

// FactorScore is one weighted component of the wellness score.
type FactorScore struct {
	Dimension Dimension `json:"dimension"`
	Average   float64   `json:"average"`
	Target    float64   `json:"target"`
	Weight    float64   `json:"weight"`
	Points    float64   `json:"points"`
}

// WellnessScore is the 0-100 composite score with its breakdown.
type WellnessScore struct {
	Score      int           `json:"score"`
	WindowSize int           `json:"window_size"`
	Factors    []FactorScore `json:"factors"`
}

// DailyAlert is a threshold alert raised for a single log entry.
type DailyAlert struct {
	ID      string     `json:"id"`
	Level   AlertLevel `json:"type"`
	Message string     `json:"message"`
}

// StreakSummary reports logging consistency over the full history.
type StreakSummary struct {
	Current     int   `json:"current"`
	Longest     int   `json:"longest"`
	TotalLogs   int   `json:"total_logs"`
	LastLogDate *Date `json:"last_log_date,omitempty"`
}

// RecentAverages are the dashboard headline numbers over the recent window.
type RecentAverages struct {
	Mood     float64 `json:"mood"`
	Sleep    float64 `json:"sleep"`
	Exercise float64 `json:"exercise"`
	Water    float64 `json:"water"`
}

// Dashboard is the analytics overview returned to the presentation layer.
type Dashboard struct {
	ProfileName   string         `json:"profile_name,omitempty"`
	TotalLogs     int            `json:"total_logs"`
	Wellness      WellnessScore  `json:"wellness"`
	CurrentStreak int            `json:"current_streak"`
	LongestStreak int            `json:"longest_streak"`
	Averages      RecentAverages `json:"averages"`
	Insights      []Insight      `json:"insights"`
	Correlations  []Correlation  `json:"correlations"`
	Trends        []TrendSeries  `json:"trends"`
	ComputedAt    time.Time      `json:"computed_at"`
}

// ReportPeriod selects the window of a wellness report.
type ReportPeriod string

const (
	ReportPeriodWeek  ReportPeriod = "week"
	ReportPeriodMonth ReportPeriod = "month"
)

// Days returns the number of calendar days covered by the period.
func (p ReportPeriod) Days() int {
	if p == ReportPeriodMonth {
		return 30
	}
	return 7
}

// Valid reports whether p is a known period.
func (p ReportPeriod) Valid() bool {
	return p == ReportPeriodWeek || p == ReportPeriodMonth
}

// Report is the data behind an exported wellness report.
type Report struct {
	Period          ReportPeriod          `json:"period"`
	GeneratedAt     time.Time             `json:"generated_at"`
	StartDate       Date                  `json:"start_date"`
	EndDate         Date                  `json:"end_date"`
	EntryCount      int                   `json:"entry_count"`
	WellnessScore   int                   `json:"wellness_score"`
	CurrentStreak   int                   `json:"current_streak"`
	LongestStreak   int                   `json:"longest_streak"`
	Statistics      []DimensionStatistics `json:"statistics"`
	Correlations    []Correlation         `json:"correlations"`
	Recommendations []string              `json:"recommendations"`
}
