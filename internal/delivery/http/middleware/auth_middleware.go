package middleware

import (
	"strings"

	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys under which the auth gate stores the resolved identity.
const (
	ContextKeyUserID = "userID"
	ContextKeyClaims = "claims"
)

// AuthMiddleware is the auth gate for protected routes. It resolves the
// bearer token to an identity or rejects the request; there is no retry and
// nothing is cached across requests.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and attaches the decoded claims to
// the request context. A missing or malformed Authorization header fails
// before the token service is consulted; invalid and expired tokens both map
// to 401, with distinct messages.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("missing authorization header")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			// Verify already returns ErrTokenInvalid or ErrTokenExpired;
			// both carry 401.
			return err
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}
