// Package entity contains the core business objects of the platform,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, representing a single learner
// account. The email is the login identifier and is unique across the
// platform; PasswordHash is the one-way credential digest and must never
// leave the backend.
type User struct {
	ID           uuid.UUID // The global unique identifier for the account.
	Email        string    // Login identifier; stored lowercased, unique.
	Name         string    // Display name shown on the platform.
	PasswordHash string    // One-way bcrypt digest of the password. Never serialized.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Public returns a copy of the user with the credential digest stripped,
// safe to hand to the delivery layer.
func (u *User) Public() *User {
	clone := *u
	clone.PasswordHash = ""

	return &clone
}
