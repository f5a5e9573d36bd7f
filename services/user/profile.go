package user

import (
	"context"
	"fmt"

	"karigarstop/models"
)

// GetProfile returns the profile for the given user ID.
func (s *DefaultUserService) GetProfile(userID string) (*models.UserProfile, error) {
	return s.Store.GetByID(context.Background(), userID)
}

// UpdateProfile applies the non-nil fields of the update and returns the
// stored result. Email and mobile are immutable once registered.
func (s *DefaultUserService) UpdateProfile(userID string, update ProfileUpdate) (*models.UserProfile, error) {
	ctx := context.Background()
	profile, err := s.Store.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FullName != nil {
		if *update.FullName == "" {
			return nil, fmt.Errorf("full name cannot be empty")
		}
		profile.FullName = *update.FullName
	}
	if update.ProfileImage != nil {
		profile.ProfileImage = *update.ProfileImage
	}

	if err := s.Store.Save(ctx, *profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}
