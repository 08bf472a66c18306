package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/repository"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a profile repository on db.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context) (*models.UserProfile, error) {
	var row models.UserProfile
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &row, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	row := *profile
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &row, nil
}

func (r *profileRepository) Update(ctx context.Context, id string, profile *models.UserProfile) (*models.UserProfile, error) {
	res := r.db.WithContext(ctx).Model(&models.UserProfile{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":   profile.Name,
		"age":    profile.Age,
		"gender": profile.Gender,
		"goals":  profile.Goals,
		"notes":  profile.Notes,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	var row models.UserProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	return &row, nil
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.UserProfile{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
