package handler

import (
	"log/slog"
	"time"

	"account/internal/delivery/api/response"
	"account/internal/domain/entity"
	"account/internal/errors"
	"account/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user record handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"max=255"`
	Email    string `json:"email" validate:"max=320"`
	Password string `json:"password"`
}

// UpdateUserRequest represents a partial update. Absent fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Email    *string `json:"email" validate:"omitempty,max=320"`
	Password *string `json:"password"`
}

// UserResponse is the outward view of a user. The password digest never leaves the service.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toUserResponse(user))
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toUserResponse(user))
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]UserResponse, 0, len(users))
	for _, user := range users {
		views = append(views, toUserResponse(user))
	}

	return response.OK(c, views)
}

// UpdateUser handles PUT /users/:id and answers 201 with the stored record.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), &usecase.UpdateUserInput{
		ID:       c.Param("id"),
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toUserResponse(user))
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userUC.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
