//go:build unit

package user_test

import (
	"testing"
	"time"

	"resto-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  string
		errIs error
	}{
		{name: "plain address", value: "a@x.com", want: "a@x.com"},
		{name: "normalized to lowercase", value: "  Alice@X.Com ", want: "alice@x.com"},
		{name: "empty", value: "", errIs: user.ErrInvalidEmail},
		{name: "whitespace only", value: "   ", errIs: user.ErrInvalidEmail},
		{name: "missing at sign", value: "alice.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing local part", value: "@x.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", value: "alice@", errIs: user.ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.value)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.Value())
		})
	}
}

func TestUserLogin(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	profile := user.Profile{
		Email:   "a@x.com",
		Name:    "Alice",
		Picture: "https://example.com/alice.png",
		Token:   "tok-1",
	}

	t.Run("first login creates the record", func(t *testing.T) {
		u, err := user.NewUser(profile, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "a@x.com", u.Email().Value())
		assert.Equal(t, "tok-1", u.OAuthToken())
		assert.Equal(t, now, u.LastLogin())
	})

	t.Run("fresh token reports a change", func(t *testing.T) {
		u, err := user.NewUser(profile, now)
		require.NoError(t, err)

		later := now.Add(time.Hour)
		changed := u.Login("tok-2", later)

		assert.True(t, changed)
		assert.Equal(t, "tok-2", u.OAuthToken())
		assert.Equal(t, later, u.LastLogin())
	})

	t.Run("replayed token reports no change", func(t *testing.T) {
		u, err := user.NewUser(profile, now)
		require.NoError(t, err)

		later := now.Add(time.Hour)
		changed := u.Login("tok-1", later)

		assert.False(t, changed)
		// last login still moves forward
		assert.Equal(t, later, u.LastLogin())
	})

	t.Run("invalid profile email rejected", func(t *testing.T) {
		_, err := user.NewUser(user.Profile{Email: "not-an-email"}, now)
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}
