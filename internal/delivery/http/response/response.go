// Package response defines the uniform JSON envelope every endpoint emits.
package response

import (
	domainerrors "campus/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Envelope is the single top-level response shape. Successful responses set
// Success=true and carry Data; failures set Success=false and optionally list
// field-level violations. No other top-level shape is ever emitted.
type Envelope struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Data    any                      `json:"data,omitempty"`
	Errors  []domainerrors.Violation `json:"errors,omitempty"`
}

// Success writes a 2xx envelope.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope with the given status.
func Error(c echo.Context, statusCode int, message string, violations []domainerrors.Violation) error {
	return c.JSON(statusCode, Envelope{
		Success: false,
		Message: message,
		Errors:  violations,
	})
}
