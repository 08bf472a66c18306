package service

import (
	"context"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/repository"
)

// DailyLogService defines the business logic for daily log entries
type DailyLogService interface {
	CreateLog(ctx context.Context, req *models.CreateDailyLogRequest) (*models.DailyLog, error)
	GetLog(ctx context.Context, id string) (*models.DailyLog, error)
	ListLogs(ctx context.Context, opts repository.ListOptions) ([]models.DailyLog, error)
	UpdateLog(ctx context.Context, id string, req *models.UpdateDailyLogRequest) (*models.DailyLog, error)
	DeleteLog(ctx context.Context, id string) error
	GetAlerts(ctx context.Context, id string) ([]models.DailyAlert, error)
}

// ProfileService manages the single user profile
type ProfileService interface {
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	CreateProfile(ctx context.Context, req *models.ProfileRequest) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, id string, req *models.ProfileRequest) (*models.UserProfile, error)
	DeleteProfile(ctx context.Context, id string) error
}

// AnalyticsService derives statistics and insights from the stored logs.
// Nothing is cached; every call recomputes from the repository.
type AnalyticsService interface {
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
	GetStatistics(ctx context.Context, opts repository.ListOptions) ([]models.DimensionStatistics, error)
	GetTrend(ctx context.Context, dimension string, window int) (*models.TrendSeries, error)
	GetCorrelations(ctx context.Context) ([]models.Correlation, error)
	GetInsights(ctx context.Context) ([]models.Insight, error)
	GetStreak(ctx context.Context) (*models.StreakSummary, error)
	GetWellnessScore(ctx context.Context) (*models.WellnessScore, error)
}

// ReportService builds week and month reports
type ReportService interface {
	BuildReport(ctx context.Context, period models.ReportPeriod) (*models.Report, error)
}
