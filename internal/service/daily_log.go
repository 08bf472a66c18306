package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JonnyWalker81/wellness/backend/internal/analysis"
	"github.com/JonnyWalker81/wellness/backend/internal/logger"
	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/repository"
)

type dailyLogService struct {
	logRepo repository.DailyLogRepository
	now     func() time.Time
}

// NewDailyLogService creates a new daily log service
func NewDailyLogService(logRepo repository.DailyLogRepository) DailyLogService {
	return &dailyLogService{logRepo: logRepo, now: time.Now}
}

func mapLogErr(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrLogNotFound, id)
	}
	return err
}

func (s *dailyLogService) CreateLog(ctx context.Context, req *models.CreateDailyLogRequest) (*models.DailyLog, error) {
	// Client-generated ids let offline entries keep their identity.
	id := req.ID
	if id != "" {
		if err := ValidateUUIDv7(id, s.now()); err != nil {
			return nil, err
		}
	} else {
		var err error
		if id, err = NewID(); err != nil {
			return nil, err
		}
	}

	log := &models.DailyLog{
		ID:              id,
		LogDate:         req.LogDate,
		StudyHours:      req.StudyHours,
		SleepHours:      req.SleepHours,
		MealCount:       req.MealCount,
		MealQuality:     req.MealQuality,
		ScreenTime:      req.ScreenTime,
		WaterIntake:     req.WaterIntake,
		Mood:            req.Mood,
		ExerciseMinutes: req.ExerciseMinutes,
		ExerciseType:    req.ExerciseType,
		DailyNote:       req.DailyNote,
	}

	created, err := s.logRepo.Create(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily log: %w", err)
	}

	logger.Ctx(ctx).Info("daily log created",
		logger.String("log_id", created.ID),
		logger.String("log_date", created.LogDate.String()),
	)
	return created, nil
}

func (s *dailyLogService) GetLog(ctx context.Context, id string) (*models.DailyLog, error) {
	log, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapLogErr(err, id)
	}
	return log, nil
}

func (s *dailyLogService) ListLogs(ctx context.Context, opts repository.ListOptions) ([]models.DailyLog, error) {
	logs, err := s.logRepo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}
	return logs, nil
}

func (s *dailyLogService) UpdateLog(ctx context.Context, id string, req *models.UpdateDailyLogRequest) (*models.DailyLog, error) {
	existing, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapLogErr(err, id)
	}

	req.Apply(existing)

	updated, err := s.logRepo.Update(ctx, id, existing)
	if err != nil {
		return nil, mapLogErr(err, id)
	}

	logger.Ctx(ctx).Info("daily log updated", logger.String("log_id", id))
	return updated, nil
}

func (s *dailyLogService) DeleteLog(ctx context.Context, id string) error {
	if err := s.logRepo.Delete(ctx, id); err != nil {
		return mapLogErr(err, id)
	}
	logger.Ctx(ctx).Info("daily log deleted", logger.String("log_id", id))
	return nil
}

func (s *dailyLogService) GetAlerts(ctx context.Context, id string) ([]models.DailyAlert, error) {
	log, err := s.GetLog(ctx, id)
	if err != nil {
		return nil, err
	}
	return analysis.DailyAlerts(*log), nil
}
