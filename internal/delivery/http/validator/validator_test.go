package validator

import (
	"testing"

	domainerrors "campus/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUpPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&signUpPayload{
		Name:     "Test Student",
		Email:    "student@example.com",
		Password: "Password123!",
	})

	assert.NoError(t, err)
}

func TestValidate_ReportsEveryViolationInOrder(t *testing.T) {
	v := New()

	err := v.Validate(&signUpPayload{
		Name:     "",
		Email:    "not-an-email",
		Password: "123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))

	violations := appErr.Violations()
	require.Len(t, violations, 3)
	assert.Equal(t, "name", violations[0].Field)
	assert.Equal(t, "email", violations[1].Field)
	assert.Equal(t, "password", violations[2].Field)
	assert.Equal(t, "name is required", violations[0].Message)
	assert.Equal(t, "email must be a valid email address", violations[1].Message)
	assert.Equal(t, "password must be at least 8 characters long", violations[2].Message)
}

func TestValidate_FieldNamesComeFromJSONTags(t *testing.T) {
	v := New()

	err := v.Validate(&signUpPayload{
		Name:     "Test Student",
		Email:    "student@example.com",
		Password: "",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	require.Len(t, appErr.Violations(), 1)
	assert.Equal(t, "password", appErr.Violations()[0].Field)
}

func TestValidate_NonStructPayload(t *testing.T) {
	v := New()

	err := v.Validate(nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
