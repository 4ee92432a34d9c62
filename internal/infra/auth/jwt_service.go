package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"campus/config"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"
	"campus/internal/errors"
)

// sessionClaims is the wire shape of the claim set. The registered claims
// carry subject (user ID), iat and exp; email and name travel as private
// claims so the profile route can be served without a DB round trip.
type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte
	lifetime time.Duration
}

// NewJWTService is the constructor for jwtService. Exactly one signing secret
// is active at a time; rotating it invalidates all outstanding tokens.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.TokenSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	lifetime := cfg.Auth.TokenLifetime
	if lifetime == 0 {
		lifetime = config.DefaultTokenLifetime()
	}

	return &jwtService{
		secret:   []byte(cfg.Auth.TokenSecret),
		lifetime: lifetime,
	}, nil
}

// Issue creates a signed, time-bounded token for the given user.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token signature and expiry and decodes the claim set.
func (s *jwtService) Verify(tokenString string) (*service.TokenClaims, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		// Expiry is the one defect callers may want to surface distinctly;
		// everything else collapses to an invalid token.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token past expiry")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token structure")
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token did not validate")
	}

	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("missing time claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("malformed subject claim")
	}

	return &service.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		Name:      claims.Name,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Lifetime returns the configured token validity window.
func (s *jwtService) Lifetime() time.Duration {
	return s.lifetime
}
