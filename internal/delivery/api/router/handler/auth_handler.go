package handler

import (
	"log/slog"

	"account/internal/delivery/api/response"
	domainerrors "account/internal/domain/errors"
	"account/internal/errors"
	"account/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for sign-up and sign-in handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignUpRequest represents the request body for account registration.
type SignUpRequest struct {
	Name     string `json:"name" validate:"max=255"`
	Email    string `json:"email" validate:"max=320"`
	Password string `json:"password"`
}

// SignInRequest represents the request body for signing in.
type SignInRequest struct {
	Email    string `json:"email" validate:"max=320"`
	Password string `json:"password"`
}

// TokenResponse is the body returned on successful sign-up or sign-in.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, TokenResponse{AccessToken: output.AccessToken})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req SignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, TokenResponse{AccessToken: output.AccessToken})
}

// bindAndValidate decodes the request body into req and checks its struct tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidRequestBody, err.Error())
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
