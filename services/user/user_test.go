package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMobile(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", "+911234567890", "+911234567890"},
		{"bare digits get prefix", "1234567890", "+911234567890"},
		{"duplicate prefix stripped", "+91+911234567890", "+911234567890"},
		{"overlong input capped at 13", "+9112345678901234", "+911234567890"},
		{"surrounding whitespace trimmed", " +911234567890 ", "+911234567890"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeMobile(tc.in))
		})
	}
}

func TestValidMobile(t *testing.T) {
	assert.True(t, ValidMobile("+911234567890"))
	assert.False(t, ValidMobile("+9112345"))
	assert.False(t, ValidMobile("1234567890"))
	assert.False(t, ValidMobile("+91123456789a"))
}

func newTestUserService() *DefaultUserService {
	return &DefaultUserService{Store: NewMemoryProfileStore()}
}

func TestSignUpAndSignIn(t *testing.T) {
	svc := newTestUserService()

	resp, err := svc.SignUp("Asha Patel", "Asha@Example.com", "9876543210", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.Profile.Email, "email lowercased")
	assert.Equal(t, "+919876543210", resp.Profile.Mobile, "mobile normalized")
	assert.NotEqual(t, "secret123", resp.Profile.PasswordHash)

	t.Run("sign in by email", func(t *testing.T) {
		got, err := svc.SignIn("asha@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, resp.Profile.ID, got.Profile.ID)
	})

	t.Run("sign in by mobile", func(t *testing.T) {
		got, err := svc.SignIn("9876543210", "secret123")
		require.NoError(t, err)
		assert.Equal(t, resp.Profile.ID, got.Profile.ID)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := svc.SignIn("asha@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown identifier rejected", func(t *testing.T) {
		_, err := svc.SignIn("nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestSignUpValidation(t *testing.T) {
	svc := newTestUserService()

	_, err := svc.SignUp("", "a@b.com", "9876543210", "pw")
	assert.Error(t, err)

	_, err = svc.SignUp("A", "a@b.com", "12345", "pw")
	assert.ErrorIs(t, err, ErrInvalidMobile)

	_, err = svc.SignUp("A", "a@b.com", "9876543210", "pw")
	require.NoError(t, err)

	_, err = svc.SignUp("B", "a@b.com", "9123456789", "pw")
	assert.ErrorIs(t, err, ErrDuplicateUser, "duplicate email")

	_, err = svc.SignUp("B", "b@b.com", "9876543210", "pw")
	assert.ErrorIs(t, err, ErrDuplicateUser, "duplicate mobile")
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestUserService()
	resp, err := svc.SignUp("Asha Patel", "asha@example.com", "9876543210", "secret123")
	require.NoError(t, err)

	name := "Asha P."
	image := "data:image/png;base64,iVBORw0KGgo="
	updated, err := svc.UpdateProfile(resp.Profile.ID, ProfileUpdate{FullName: &name, ProfileImage: &image})
	require.NoError(t, err)
	assert.Equal(t, "Asha P.", updated.FullName)
	assert.Equal(t, image, updated.ProfileImage)
	assert.Equal(t, "asha@example.com", updated.Email, "email untouched")

	empty := ""
	_, err = svc.UpdateProfile(resp.Profile.ID, ProfileUpdate{FullName: &empty})
	assert.Error(t, err)

	_, err = svc.UpdateProfile("missing", ProfileUpdate{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
