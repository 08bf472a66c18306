package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JonnyWalker81/wellness/backend/internal/logger"
	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/report"
	"github.com/JonnyWalker81/wellness/backend/internal/repository"
)

type reportService struct {
	logRepo repository.DailyLogRepository
	now     func() time.Time
}

// NewReportService creates a report service; now defaults to time.Now.
func NewReportService(logRepo repository.DailyLogRepository, now func() time.Time) ReportService {
	if now == nil {
		now = time.Now
	}
	return &reportService{logRepo: logRepo, now: now}
}

func (s *reportService) BuildReport(ctx context.Context, period models.ReportPeriod) (*models.Report, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	// Streaks and the score need the full history, not just the period.
	logs, err := s.logRepo.List(ctx, repository.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to load daily logs: %w", err)
	}

	r, err := report.Build(logs, period, s.now())
	if err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Info("report built",
		logger.String("period", string(period)),
		logger.Int("entries", r.EntryCount),
	)
	return r, nil
}
