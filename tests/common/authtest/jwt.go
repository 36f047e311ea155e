//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"resto-booking/internal/pkg/config"
	"resto-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// GenerateToken mints an access token directly. The real login flow round-trips
// through Google OAuth, which is out of reach for tests.
func GenerateToken(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, email string) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)

	service := jwt.NewService(cfg.Secret, duration)
	token, err := service.Generate(userID, email)
	require.NoError(t, err)
	return token
}

// GenerateExpiredToken mints a token that is already past its expiry.
func GenerateExpiredToken(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, email string) string {
	t.Helper()

	service := jwt.NewService(cfg.Secret, 1*time.Millisecond)
	token, err := service.Generate(userID, email)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
