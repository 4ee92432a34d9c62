// Package service defines the interfaces for domain services implemented by
// the infrastructure layer.
package service

// PasswordHasher defines the contract for one-way credential storage.
// Hashing is deliberately expensive (tunable work factor) to resist offline
// brute force; callers must not cache or memoize digests.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	// It fails only on empty input or an internal hashing failure.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored digest in constant
	// time. It returns false, never an error, on mismatch or a malformed digest.
	Check(password, hash string) bool
}
