// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"campus/internal/delivery/http/middleware"
	"campus/internal/delivery/http/response"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// userView is the wire shape of an account. The credential digest has no
// field here, so it can never leak into a response body.
type userView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// authView pairs an account with its freshly issued session token.
type authView struct {
	User  userView `json:"user"`
	Token string   `json:"token"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

// SignUp handles the account creation request.
func (h *AccountHandler) SignUp(c echo.Context) error {
	input := new(usecase.SignUpInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed signup payload")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, authView{
		User:  toUserView(output.User),
		Token: output.Token,
	}, "Account created successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed login payload")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authView{
		User:  toUserView(output.User),
		Token: output.Token,
	}, "Login successful")
}

// GetProfile handles the request to get the current account's profile.
// The auth gate has already resolved the identity; a missing context value
// here means the route was wired without the gate, which still must not
// expose anything.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userIDVal := c.Get(middleware.ContextKeyUserID)
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("no identity resolved for request")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]userView{
		"user": toUserView(user),
	}, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
