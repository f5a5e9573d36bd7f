package user

import "karigarstop/models"

// UserService covers account creation, sign-in, password recovery, and
// profile reads/updates.
type UserService interface {
	SignUp(fullName, email, mobile, password string) (*models.AuthResponse, error)
	SignIn(identifier, password string) (*models.AuthResponse, error)

	InitiatePasswordReset(mobile string) error
	CompletePasswordReset(mobile, otp, newPassword string) error

	GetProfile(userID string) (*models.UserProfile, error)
	UpdateProfile(userID string, update ProfileUpdate) (*models.UserProfile, error)
}

// ProfileUpdate carries the mutable profile fields. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	FullName     *string `json:"fullName,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// DefaultUserService implements UserService on top of a ProfileStore.
type DefaultUserService struct {
	Store ProfileStore
}
