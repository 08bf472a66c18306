package repository

import (
	"context"
	"errors"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ListOptions bounds a daily log listing. Zero dates are unbounded.
type ListOptions struct {
	From models.Date
	To   models.Date
}

// DailyLogRepository defines the interface for daily log data access.
// List returns logs newest first.
type DailyLogRepository interface {
	Create(ctx context.Context, log *models.DailyLog) (*models.DailyLog, error)
	GetByID(ctx context.Context, id string) (*models.DailyLog, error)
	List(ctx context.Context, opts ListOptions) ([]models.DailyLog, error)
	Update(ctx context.Context, id string, log *models.DailyLog) (*models.DailyLog, error)
	Delete(ctx context.Context, id string) error
}

// ProfileRepository stores the single user profile. Get returns
// ErrNotFound when no profile exists.
type ProfileRepository interface {
	Get(ctx context.Context) (*models.UserProfile, error)
	Create(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error)
	Update(ctx context.Context, id string, profile *models.UserProfile) (*models.UserProfile, error)
	Delete(ctx context.Context, id string) error
}
