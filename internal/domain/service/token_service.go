package service

import (
	"time"

	"campus/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenClaims is the decoded claim set carried by a session token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless, signed session tokens.
// Tokens are not persisted and cannot be revoked before expiry; that
// trade-off is accepted for this platform's threat model.
type TokenService interface {
	// Issue signs a time-bounded token encoding the user's public identity.
	Issue(user *entity.User) (string, error)

	// Verify checks the token's signature and expiry and returns the decoded
	// claims. It fails with ErrTokenExpired when the token is past its expiry
	// instant and ErrTokenInvalid for every other defect (bad signature,
	// malformed structure, wrong algorithm).
	Verify(token string) (*TokenClaims, error)

	// Lifetime reports the configured token validity window.
	Lifetime() time.Duration
}
