// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"campus/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---
// The delivery layer binds JSON bodies into these and runs the `validate`
// rules before the usecase sees them.

// SignUpInput defines the data required to create a new account.
type SignUpInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the account (credential digest stripped) and a freshly
// issued session token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// SignUp creates an account and returns it with a session token.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// Login verifies credentials and returns the account with a session token.
	// An unknown email and a wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetProfile returns the account resolved by the auth gate.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
