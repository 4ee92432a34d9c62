package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus/internal/delivery/http/response"
	domainerrors "campus/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func newDiscardErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleHTTPError_AppError(t *testing.T) {
	c, rec := newErrorTestContext()

	newDiscardErrorMiddleware().HandleHTTPError(domainerrors.ErrInvalidCredentials, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Invalid email or password", envelope.Message)
	assert.Empty(t, envelope.Errors)
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	c, rec := newErrorTestContext()

	err := errors.Wrap(domainerrors.ErrEmailAlreadyRegistered.WrapMessage("signup failed"), "handler")
	newDiscardErrorMiddleware().HandleHTTPError(err, c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "An account with this email already exists", envelope.Message)
}

func TestHandleHTTPError_ValidationViolations(t *testing.T) {
	c, rec := newErrorTestContext()

	err := domainerrors.ErrValidationFailed.WithViolations([]domainerrors.Violation{
		{Field: "email", Message: "email must be a valid email address"},
		{Field: "password", Message: "password must be at least 8 characters long"},
	})
	newDiscardErrorMiddleware().HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.Len(t, envelope.Errors, 2)
	assert.Equal(t, "email", envelope.Errors[0].Field)
	assert.Equal(t, "password", envelope.Errors[1].Field)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	c, rec := newErrorTestContext()

	newDiscardErrorMiddleware().HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Not Found", envelope.Message)
}

func TestHandleHTTPError_UnexpectedErrorHidesDetail(t *testing.T) {
	c, rec := newErrorTestContext()

	newDiscardErrorMiddleware().HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Internal server error", envelope.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHandleHTTPError_CommittedResponse(t *testing.T) {
	c, rec := newErrorTestContext()

	require.NoError(t, c.NoContent(http.StatusOK))
	bodyBefore := rec.Body.String()

	newDiscardErrorMiddleware().HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, bodyBefore, rec.Body.String())
}
