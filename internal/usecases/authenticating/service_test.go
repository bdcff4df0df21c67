package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newTestConfig(t *testing.T) *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:               "test-secret",
			TokenTTL:             time.Hour,
			OperatorEmail:        "Ops@Example.com",
			OperatorPasswordHash: hash(t, "op-pass"),
			ViewerEmail:          "viewer@example.com",
			ViewerPasswordHash:   hash(t, "view-pass"),
		},
	}
}

func TestService_Login(t *testing.T) {
	cfg := newTestConfig(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := newService(cfg, func() time.Time { return now })

	t.Run("operator gets admin role", func(t *testing.T) {
		resp, err := s.Login(" ops@example.com ", "op-pass")
		require.NoError(t, err)

		assert.Equal(t, "ops@example.com", resp.Email)
		assert.Equal(t, domain.RoleAdmin, resp.RoleID)
		assert.Equal(t, now.Add(time.Hour).Unix(), resp.ExpiresAt)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("viewer gets viewer role", func(t *testing.T) {
		resp, err := s.Login("viewer@example.com", "view-pass")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleViewer, resp.RoleID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login("viewer@example.com", "nope")
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.Login("who@example.com", "op-pass")
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("missing data", func(t *testing.T) {
		_, err := s.Login("", "")
		assert.True(t, errors.Is(err, ErrMissingRequiredData))
		assert.True(t, IsCredentialsError(err))
	})
}

func TestService_LoginWithoutOperators(t *testing.T) {
	s := newService(&config.Config{}, time.Now)

	_, err := s.Login("a@b.c", "x")
	assert.True(t, errors.Is(err, ErrNoOperators))
}

func TestService_ValidateToken(t *testing.T) {
	cfg := newTestConfig(t)
	s := newService(cfg, time.Now)

	resp, err := s.Login("ops@example.com", "op-pass")
	require.NoError(t, err)

	claims, err := s.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.UserEmail)
	assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)

	t.Run("wrong secret", func(t *testing.T) {
		other := newService(&config.Config{Auth: config.Auth{Secret: "other"}}, time.Now)
		_, err := other.ValidateToken(resp.Token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("expired", func(t *testing.T) {
		past := newService(cfg, func() time.Time { return time.Now().Add(-2 * time.Hour) })
		expired, err := past.Login("ops@example.com", "op-pass")
		require.NoError(t, err)

		_, err = s.ValidateToken(expired.Token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
		assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
	})
}
