package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/repository"
)

type dailyLogRepository struct {
	db *gorm.DB
}

// NewDailyLogRepository creates a daily log repository on db.
func NewDailyLogRepository(db *gorm.DB) repository.DailyLogRepository {
	return &dailyLogRepository{db: db}
}

func (r *dailyLogRepository) Create(ctx context.Context, log *models.DailyLog) (*models.DailyLog, error) {
	row := *log
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create daily log: %w", err)
	}
	return &row, nil
}

func (r *dailyLogRepository) GetByID(ctx context.Context, id string) (*models.DailyLog, error) {
	var row models.DailyLog
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily log: %w", err)
	}
	return &row, nil
}

func (r *dailyLogRepository) List(ctx context.Context, opts repository.ListOptions) ([]models.DailyLog, error) {
	q := r.db.WithContext(ctx).Order("log_date DESC").Order("created_at DESC")
	if !opts.From.IsZero() {
		q = q.Where("log_date >= ?", opts.From)
	}
	if !opts.To.IsZero() {
		q = q.Where("log_date <= ?", opts.To)
	}

	logs := []models.DailyLog{}
	if err := q.Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}
	return logs, nil
}

func (r *dailyLogRepository) Update(ctx context.Context, id string, log *models.DailyLog) (*models.DailyLog, error) {
	res := r.db.WithContext(ctx).Model(&models.DailyLog{}).Where("id = ?", id).Updates(map[string]interface{}{
		"log_date":         log.LogDate,
		"study_hours":      log.StudyHours,
		"sleep_hours":      log.SleepHours,
		"meal_count":       log.MealCount,
		"meal_quality":     log.MealQuality,
		"screen_time":      log.ScreenTime,
		"water_intake":     log.WaterIntake,
		"mood":             log.Mood,
		"exercise_minutes": log.ExerciseMinutes,
		"exercise_type":    log.ExerciseType,
		"daily_note":       log.DailyNote,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update daily log: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *dailyLogRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.DailyLog{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete daily log: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
