// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"account/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a user administratively.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput is a partial update. Nil fields are left untouched.
type UpdateUserInput struct {
	ID       string
	Name     *string
	Email    *string
	Password *string
}

// UserUsecase defines the interface for user record management.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id string) error
}
