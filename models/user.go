package models

import "time"

// UserProfile is the persisted user record. ProfileImage is an inline
// data URL uploaded from the profile screen; there is no separate media
// storage backend.
type UserProfile struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"` // +91 followed by 10 digits
	PasswordHash string    `json:"-"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthResponse is returned on successful signup or signin.
type AuthResponse struct {
	Token   string      `json:"token"`
	Profile UserProfile `json:"profile"`
}
