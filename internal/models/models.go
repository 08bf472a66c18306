package models

import "time"

// DailyLog is one user-submitted record of habits for a calendar day.
type DailyLog struct {
	ID              string    `json:"id" gorm:"primaryKey;type:text"`
	LogDate         Date      `json:"log_date" gorm:"column:log_date;index;not null"`
	StudyHours      float64   `json:"study_hours"`
	SleepHours      float64   `json:"sleep_hours"`
	MealCount       int       `json:"meal_count"`
	MealQuality     int       `json:"meal_quality"`
	ScreenTime      float64   `json:"screen_time"`
	WaterIntake     float64   `json:"water_intake"`
	Mood            int       `json:"mood"`
	ExerciseMinutes float64   `json:"exercise_minutes"`
	ExerciseType    string    `json:"exercise_type"`
	DailyNote       string    `json:"daily_note"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserProfile holds the single user's profile. At most one row exists.
type UserProfile struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Goals     string    `json:"goals"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name used by the hosted schema.
func (UserProfile) TableName() string {
	return "user_profile"
}

// CreateDailyLogRequest represents the request to create a daily log.
// LogDate is checked by the handler since the validator skips struct fields.
type CreateDailyLogRequest struct {
	ID              string  `json:"id"`
	LogDate         Date    `json:"log_date"`
	StudyHours      float64 `json:"study_hours" binding:"gte=0,lte=24"`
	SleepHours      float64 `json:"sleep_hours" binding:"gte=0,lte=24"`
	MealCount       int     `json:"meal_count" binding:"gte=0,lte=20"`
	MealQuality     int     `json:"meal_quality" binding:"omitempty,gte=1,lte=5"`
	ScreenTime      float64 `json:"screen_time" binding:"gte=0,lte=24"`
	WaterIntake     float64 `json:"water_intake" binding:"gte=0"`
	Mood            int     `json:"mood" binding:"required,gte=1,lte=10"`
	ExerciseMinutes float64 `json:"exercise_minutes" binding:"gte=0,lte=1440"`
	ExerciseType    string  `json:"exercise_type" binding:"max=100"`
	DailyNote       string  `json:"daily_note" binding:"max=2000"`
}

// UpdateDailyLogRequest represents a partial update of a daily log.
// Nil pointers and unset nullable fields are left untouched.
type UpdateDailyLogRequest struct {
	LogDate         *Date          `json:"log_date"`
	StudyHours      *float64       `json:"study_hours" binding:"omitempty,gte=0,lte=24"`
	SleepHours      *float64       `json:"sleep_hours" binding:"omitempty,gte=0,lte=24"`
	MealCount       *int           `json:"meal_count" binding:"omitempty,gte=0,lte=20"`
	MealQuality     *int           `json:"meal_quality" binding:"omitempty,gte=1,lte=5"`
	ScreenTime      *float64       `json:"screen_time" binding:"omitempty,gte=0,lte=24"`
	WaterIntake     *float64       `json:"water_intake" binding:"omitempty,gte=0"`
	Mood            *int           `json:"mood" binding:"omitempty,gte=1,lte=10"`
	ExerciseMinutes *float64       `json:"exercise_minutes" binding:"omitempty,gte=0,lte=1440"`
	ExerciseType    NullableString `json:"exercise_type"`
	DailyNote       NullableString `json:"daily_note"`
}

// Apply copies every set field of the request onto log.
func (r *UpdateDailyLogRequest) Apply(log *DailyLog) {
	if r.LogDate != nil {
		log.LogDate = *r.LogDate
	}
	if r.StudyHours != nil {
		log.StudyHours = *r.StudyHours
	}
	if r.SleepHours != nil {
		log.SleepHours = *r.SleepHours
	}
	if r.MealCount != nil {
		log.MealCount = *r.MealCount
	}
	if r.MealQuality != nil {
		log.MealQuality = *r.MealQuality
	}
	if r.ScreenTime != nil {
		log.ScreenTime = *r.ScreenTime
	}
	if r.WaterIntake != nil {
		log.WaterIntake = *r.WaterIntake
	}
	if r.Mood != nil {
		log.Mood = *r.Mood
	}
	if r.ExerciseMinutes != nil {
		log.ExerciseMinutes = *r.ExerciseMinutes
	}
	if r.ExerciseType.Set {
		log.ExerciseType = r.ExerciseType.Value
	}
	if r.DailyNote.Set {
		log.DailyNote = r.DailyNote.Value
	}
}

// ProfileRequest is used for both creating and replacing the profile.
type ProfileRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Age    int    `json:"age" binding:"gte=0,lte=150"`
	Gender string `json:"gender" binding:"max=50"`
	Goals  string `json:"goals" binding:"max=2000"`
	Notes  string `json:"notes" binding:"max=2000"`
}
