package user

import "errors"

var (
	// ErrUserNotFound is returned when no profile matches the identifier.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned on a failed sign-in.
	ErrInvalidCredentials = errors.New("invalid email/mobile or password")

	// ErrDuplicateUser is returned when the email or mobile is taken.
	ErrDuplicateUser = errors.New("a user with this email or mobile already exists")

	// ErrInvalidMobile is returned for identifiers that are not +91 followed
	// by ten digits.
	ErrInvalidMobile = errors.New("mobile number must be in format +91XXXXXXXXXX")
)
