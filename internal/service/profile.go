package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonnyWalker81/wellness/backend/internal/logger"
	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/repository"
)

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) CreateProfile(ctx context.Context, req *models.ProfileRequest) (*models.UserProfile, error) {
	// Single-user app: at most one profile.
	_, err := s.profileRepo.Get(ctx)
	switch {
	case err == nil:
		return nil, ErrProfileExists
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	id, err := NewID()
	if err != nil {
		return nil, err
	}

	created, err := s.profileRepo.Create(ctx, &models.UserProfile{
		ID:     id,
		Name:   req.Name,
		Age:    req.Age,
		Gender: req.Gender,
		Goals:  req.Goals,
		Notes:  req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	logger.Ctx(ctx).Info("profile created", logger.String("profile_id", created.ID))
	return created, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, id string, req *models.ProfileRequest) (*models.UserProfile, error) {
	updated, err := s.profileRepo.Update(ctx, id, &models.UserProfile{
		ID:     id,
		Name:   req.Name,
		Age:    req.Age,
		Gender: req.Gender,
		Goals:  req.Goals,
		Notes:  req.Notes,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, id string) error {
	err := s.profileRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProfileNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	logger.Ctx(ctx).Info("profile deleted", logger.String("profile_id", id))
	return nil
}
