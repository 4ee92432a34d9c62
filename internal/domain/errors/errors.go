// Package errors defines the application error taxonomy. Every failure that
// can surface from the auth core maps to exactly one of these values, and the
// delivery layer renders each as a single envelope shape and status code.
package errors

import (
	"net/http"

	"campus/internal/errors"
)

// Violation is a single field-level validation failure. Violations keep the
// order in which the fields were declared on the request payload.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int           // HTTP status code
	ErrorCode() string       // Business error code
	Message() string         // User-friendly error message
	Violations() []Violation // Field-level violations (validation errors only)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode   int
	errorCode  string
	message    string
	violations []Violation
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches errors from the same taxonomy entry, so copies carrying
// violations still compare equal to their predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && e.errorCode == other.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Violations returns the field-level violations attached to the error.
func (e *BaseError) Violations() []Violation {
	return e.violations
}

// WithViolations returns a copy of the error carrying the given field violations.
func (e *BaseError) WithViolations(violations []Violation) *BaseError {
	return &BaseError{
		httpCode:   e.httpCode,
		errorCode:  e.errorCode,
		message:    e.message,
		violations: violations,
	}
}

// Predefined error types
var (
	// ErrValidationFailed reports one or more field-level violations.
	// Attach them with WithViolations.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
	)

	// ErrEmailAlreadyRegistered is returned when signup hits an email that
	// already has an account, whether through the pre-insert lookup or the
	// database unique constraint.
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"An account with this email already exists",
	)

	// ErrInvalidCredentials covers both an unknown email and a wrong password
	// at login. The two cases are deliberately indistinguishable so callers
	// cannot enumerate registered accounts.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
	)

	// ErrUnauthenticated is returned by the auth gate when the bearer token
	// is missing or does not resolve to an identity.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
	)

	// ErrTokenInvalid marks a token whose signature or structure does not verify.
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid authentication token",
	)

	// ErrTokenExpired marks a structurally valid token past its expiry instant.
	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Authentication token has expired",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)
