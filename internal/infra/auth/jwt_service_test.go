package auth

import (
	"testing"
	"time"

	"campus/config"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(lifetime time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			TokenSecret:   "test_signing_secret_very_long_for_testing",
			TokenLifetime: lifetime,
		},
	}
}

func testUser() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "student@example.com",
		Name:  "Test Student",
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(time.Hour))
	require.NoError(t, err)

	user := testUser()
	token, err := svc.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)

	// expiresAt - issuedAt equals the configured lifetime
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt))
}

func TestJWTService_DefaultLifetime(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(0))
	require.NoError(t, err)

	// 7 days when unconfigured
	assert.Equal(t, 7*24*time.Hour, svc.Lifetime())

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(time.Hour))
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	assert.False(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestTokenConfig(time.Hour))
	require.NoError(t, err)

	verifier, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{
			TokenSecret:   "a_completely_different_signing_secret",
			TokenLifetime: time.Hour,
		},
	})
	require.NoError(t, err)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
