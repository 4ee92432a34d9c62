package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"
	mockSvc "campus/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *mockSvc.MockTokenService) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return c, mockSvc.NewMockTokenService(t)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "Bearer good.token")

	claims := &service.TokenClaims{
		UserID:    uuid.New(),
		Email:     "student@example.com",
		Name:      "Test Student",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	tokenSvc.EXPECT().Verify("good.token").Return(claims, nil)

	var nextCalled bool
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, claims.UserID, c.Get(ContextKeyUserID))
	assert.Equal(t, claims, c.Get(ContextKeyClaims))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "")

	err := NewAuthMiddleware(tokenSvc).Authenticate(failIfCalled(t))(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthenticate_NotABearerToken(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := NewAuthMiddleware(tokenSvc).Authenticate(failIfCalled(t))(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthenticate_EmptyBearerToken(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "Bearer ")

	err := NewAuthMiddleware(tokenSvc).Authenticate(failIfCalled(t))(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "Bearer bad.token")

	tokenSvc.EXPECT().
		Verify("bad.token").
		Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("signature mismatch"))

	err := NewAuthMiddleware(tokenSvc).Authenticate(failIfCalled(t))(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "Bearer stale.token")

	tokenSvc.EXPECT().
		Verify("stale.token").
		Return(nil, domainerrors.ErrTokenExpired.WrapMessage("token expired"))

	err := NewAuthMiddleware(tokenSvc).Authenticate(failIfCalled(t))(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	assert.False(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func failIfCalled(t *testing.T) echo.HandlerFunc {
	t.Helper()

	return func(c echo.Context) error {
		t.Fatal("next handler must not run for a rejected request")

		return nil
	}
}
