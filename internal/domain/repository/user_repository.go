// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"account/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
// Email uniqueness is enforced by the store itself; a duplicate is reported as
// domainerrors.ErrUserAlreadyExists.
type UserRepository interface {
	// Create persists a new user entity and fills in its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their exact (already normalized) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every stored user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update applies a normalized patch and returns the post-update state.
	Update(ctx context.Context, id string, patch *entity.UserPatch) (*entity.User, error)

	// Delete removes the user permanently.
	Delete(ctx context.Context, id string) error
}
