// Package validator adapts go-playground/validator to echo's Validator
// interface and to the application's violation-list error contract.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "campus/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// requestValidator validates bound request DTOs against their `validate` tags.
type requestValidator struct {
	validate *playground.Validate
}

// New constructs the echo validator. Field names in violations come from the
// json tag so clients see the same names they sent.
func New() *requestValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return &requestValidator{validate: validate}
}

// Validate implements echo.Validator. Every failing field is reported, in
// struct declaration order, not just the first one encountered.
func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		// InvalidValidationError: a nil or non-struct payload. Treat it as a
		// wholesale validation failure rather than an internal error.
		return domainerrors.ErrValidationFailed
	}

	violations := make([]domainerrors.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domainerrors.Violation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}

	return domainerrors.ErrValidationFailed.WithViolations(violations)
}

// violationMessage renders a safe, human-readable message per failed rule.
func violationMessage(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
