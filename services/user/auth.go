package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"karigarstop/models"
	"karigarstop/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// SignUp registers a new account. The mobile number is normalized to the
// +91 form before validation, and duplicates on email or mobile are
// rejected.
func (s *DefaultUserService) SignUp(fullName, email, mobile, password string) (*models.AuthResponse, error) {
	if fullName == "" || email == "" || mobile == "" || password == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	mobile = NormalizeMobile(mobile)
	if !ValidMobile(mobile) {
		return nil, ErrInvalidMobile
	}
	email = strings.ToLower(strings.TrimSpace(email))

	ctx := context.Background()
	if _, err := s.Store.GetByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateUser
	}
	if _, err := s.Store.GetByMobile(ctx, mobile); err == nil {
		return nil, ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("SignUp: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	profile := models.UserProfile{
		ID:           uuid.New().String(),
		FullName:     fullName,
		Email:        email,
		Mobile:       mobile,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.Store.Save(ctx, profile); err != nil {
		utils.GetLogger().Error("SignUp: failed to save profile", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(profile.ID, profile.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	utils.GetLogger().Sugar().Infof("Registered user %s (%s)", profile.ID, profile.Email)
	return &models.AuthResponse{Token: token, Profile: profile}, nil
}

// SignIn authenticates by email or mobile number plus password.
func (s *DefaultUserService) SignIn(identifier, password string) (*models.AuthResponse, error) {
	ctx := context.Background()

	var profile *models.UserProfile
	var err error
	if strings.Contains(identifier, "@") {
		profile, err = s.Store.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(identifier)))
	} else {
		mobile := NormalizeMobile(identifier)
		if !ValidMobile(mobile) {
			return nil, ErrInvalidMobile
		}
		profile, err = s.Store.GetByMobile(ctx, mobile)
	}
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(profile.ID, profile.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthResponse{Token: token, Profile: *profile}, nil
}
