package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/pkg/supabase"
)

const dailyLogsTable = "daily_logs"

type dailyLogRepository struct {
	client *supabase.Client
}

// NewDailyLogRepository creates a daily log repository backed by Supabase.
func NewDailyLogRepository(client *supabase.Client) DailyLogRepository {
	return &dailyLogRepository{client: client}
}

func dailyLogRow(log *models.DailyLog) map[string]interface{} {
	return map[string]interface{}{
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
	}
}

func decodeFirstLog(body []byte) (*models.DailyLog, error) {
	var logs []models.DailyLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(logs) == 0 {
		return nil, ErrNotFound
	}
	return &logs[0], nil
}

func (r *dailyLogRepository) Create(ctx context.Context, log *models.DailyLog) (*models.DailyLog, error) {
	data := dailyLogRow(log)
	if log.ID != "" {
		data["id"] = log.ID
	}

	body, err := r.client.Insert(ctx, dailyLogsTable, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily log: %w", err)
	}

	created, err := decodeFirstLog(body)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily log: %w", err)
	}
	return created, nil
}

func (r *dailyLogRepository) GetByID(ctx context.Context, id string) (*models.DailyLog, error) {
	body, err := r.client.Query(ctx, dailyLogsTable, url.Values{"id": {"eq." + id}})
	if err != nil {
		return nil, fmt.Errorf("failed to get daily log: %w", err)
	}
	return decodeFirstLog(body)
}

func (r *dailyLogRepository) List(ctx context.Context, opts ListOptions) ([]models.DailyLog, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "log_date.desc,created_at.desc")
	if !opts.From.IsZero() {
		query.Add("log_date", "gte."+opts.From.String())
	}
	if !opts.To.IsZero() {
		query.Add("log_date", "lte."+opts.To.String())
	}

	body, err := r.client.Query(ctx, dailyLogsTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}

	logs := []models.DailyLog{}
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return logs, nil
}

func (r *dailyLogRepository) Update(ctx context.Context, id string, log *models.DailyLog) (*models.DailyLog, error) {
	body, err := r.client.Update(ctx, dailyLogsTable, id, dailyLogRow(log))
	if err != nil {
		return nil, fmt.Errorf("failed to update daily log: %w", err)
	}
	return decodeFirstLog(body)
}

func (r *dailyLogRepository) Delete(ctx context.Context, id string) error {
	body, err := r.client.Delete(ctx, dailyLogsTable, id)
	if err != nil {
		return fmt.Errorf("failed to delete daily log: %w", err)
	}
	_, err = decodeFirstLog(body)
	return err
}
