package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JonnyWalker81/wellness/backend/internal/analysis"
	"github.com/JonnyWalker81/wellness/backend/internal/logger"
	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/repository"
)

// DashboardCorrelationLimit caps the correlations shown on the dashboard.
const DashboardCorrelationLimit = 5

var dashboardTrends = []models.Dimension{
	models.DimensionMood,
	models.DimensionSleep,
	models.DimensionExercise,
}

type analyticsService struct {
	logRepo     repository.DailyLogRepository
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(logRepo repository.DailyLogRepository, profileRepo repository.ProfileRepository) AnalyticsService {
	return &analyticsService{
		logRepo:     logRepo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

func (s *analyticsService) allLogs(ctx context.Context) ([]models.DailyLog, error) {
	logs, err := s.logRepo.List(ctx, repository.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to load daily logs: %w", err)
	}
	return logs, nil
}

func (s *analyticsService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	var (
		logs    []models.DailyLog
		profile *models.UserProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = s.allLogs(gctx)
		return err
	})
	g.Go(func() error {
		p, err := s.profileRepo.Get(gctx)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		profile = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recent := analysis.RecentWindow(logs, analysis.RecentWindowSize)

	correlations := analysis.FindCorrelations(logs)
	if len(correlations) > DashboardCorrelationLimit {
		correlations = correlations[:DashboardCorrelationLimit]
	}

	trends := make([]models.TrendSeries, 0, len(dashboardTrends))
	for _, d := range dashboardTrends {
		trends = append(trends, analysis.BuildTrend(logs, d, analysis.TrendWindowShort))
	}

	dashboard := &models.Dashboard{
		TotalLogs:     len(logs),
		Wellness:      analysis.WellnessBreakdown(logs),
		CurrentStreak: analysis.CurrentStreak(logs),
		LongestStreak: analysis.LongestStreak(logs),
		Averages: models.RecentAverages{
			Mood:     analysis.Mean(analysis.Values(recent, models.DimensionMood)),
			Sleep:    analysis.Mean(analysis.Values(recent, models.DimensionSleep)),
			Exercise: analysis.Mean(analysis.Values(recent, models.DimensionExercise)),
			Water:    analysis.Mean(analysis.Values(recent, models.DimensionWaterIntake)),
		},
		Insights:     analysis.GenerateInsights(logs),
		Correlations: correlations,
		Trends:       trends,
		ComputedAt:   s.now().UTC(),
	}
	if profile != nil {
		dashboard.ProfileName = profile.Name
	}

	logger.Ctx(ctx).Debug("dashboard computed",
		logger.Int("total_logs", dashboard.TotalLogs),
		logger.Int("wellness_score", dashboard.Wellness.Score),
	)
	return dashboard, nil
}

func (s *analyticsService) GetStatistics(ctx context.Context, opts repository.ListOptions) ([]models.DimensionStatistics, error) {
	logs, err := s.logRepo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily logs: %w", err)
	}
	return analysis.DescribeAll(logs), nil
}

func (s *analyticsService) GetTrend(ctx context.Context, dimension string, window int) (*models.TrendSeries, error) {
	d, ok := analysis.ParseDimension(dimension)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, dimension)
	}
	if window < 1 {
		window = analysis.TrendWindowShort
	}

	logs, err := s.allLogs(ctx)
	if err != nil {
		return nil, err
	}

	series := analysis.BuildTrend(logs, d, window)
	return &series, nil
}

func (s *analyticsService) GetCorrelations(ctx context.Context) ([]models.Correlation, error) {
	logs, err := s.allLogs(ctx)
	if err != nil {
		return nil, err
	}
	return analysis.FindCorrelations(logs), nil
}

func (s *analyticsService) GetInsights(ctx context.Context) ([]models.Insight, error) {
	logs, err := s.allLogs(ctx)
	if err != nil {
		return nil, err
	}
	return analysis.GenerateInsights(logs), nil
}

func (s *analyticsService) GetStreak(ctx context.Context) (*models.StreakSummary, error) {
	logs, err := s.allLogs(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.StreakSummary{
		Current:   analysis.CurrentStreak(logs),
		Longest:   analysis.LongestStreak(logs),
		TotalLogs: len(logs),
	}
	for _, log := range logs {
		if summary.LastLogDate == nil || log.LogDate.After(*summary.LastLogDate) {
			d := log.LogDate
			summary.LastLogDate = &d
		}
	}
	return summary, nil
}

func (s *analyticsService) GetWellnessScore(ctx context.Context) (*models.WellnessScore, error) {
	logs, err := s.allLogs(ctx)
	if err != nil {
		return nil, err
	}
	score := analysis.WellnessBreakdown(logs)
	return &score, nil
}
