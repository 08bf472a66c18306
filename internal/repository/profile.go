package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/pkg/supabase"
)

const profileTable = "user_profile"

type profileRepository struct {
	client *supabase.Client
}

// NewProfileRepository creates a profile repository backed by Supabase.
func NewProfileRepository(client *supabase.Client) ProfileRepository {
	return &profileRepository{client: client}
}

func profileRow(p *models.UserProfile) map[string]interface{} {
	return map[string]interface{}{
		"name":   p.Name,
		"age":    p.Age,
		"gender": p.Gender,
		"goals":  p.Goals,
		"notes":  p.Notes,
	}
}

func decodeFirstProfile(body []byte) (*models.UserProfile, error) {
	var profiles []models.UserProfile
	if err := json.Unmarshal(body, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(profiles) == 0 {
		return nil, ErrNotFound
	}
	return &profiles[0], nil
}

func (r *profileRepository) Get(ctx context.Context) (*models.UserProfile, error) {
	query := url.Values{
		"select": {"*"},
		"order":  {"created_at.asc"},
		"limit":  {"1"},
	}
	body, err := r.client.Query(ctx, profileTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return decodeFirstProfile(body)
}

func (r *profileRepository) Create(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	data := profileRow(profile)
	if profile.ID != "" {
		data["id"] = profile.ID
	}

	body, err := r.client.Insert(ctx, profileTable, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	created, err := decodeFirstProfile(body)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return created, nil
}

func (r *profileRepository) Update(ctx context.Context, id string, profile *models.UserProfile) (*models.UserProfile, error) {
	body, err := r.client.Update(ctx, profileTable, id, profileRow(profile))
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return decodeFirstProfile(body)
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	body, err := r.client.Delete(ctx, profileTable, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	_, err = decodeFirstProfile(body)
	return err
}
