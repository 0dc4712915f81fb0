package impl

import (
	"context"
	"log/slog"

	deliverycontext "account/internal/delivery/context"
	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	"account/internal/domain/service"
	"account/internal/errors"
	"account/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser stores a new user through the same rules as sign-up and returns it.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	user, err := prepareNewUser(srv.hasher, input.Name, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("User creation rejected", slog.Any("error", err))

		return nil, err
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", user.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.String("userID", user.ID))

	return user, nil
}

// GetUser returns one user by ID.
func (srv *userService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserLookupError(err, "failed to get user")
	}

	return user, nil
}

// ListUsers returns every stored user.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser normalizes the supplied fields, rehashing a new password, and
// returns the user as stored after the update.
func (srv *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*entity.User, error) {
	patch, err := preparePatch(srv.hasher, input)
	if err != nil {
		srv.log(ctx).Warn("User update rejected", slog.String("userID", input.ID), slog.Any("error", err))

		return nil, err
	}

	user, err := srv.userRepo.Update(ctx, input.ID, patch)
	if err != nil {
		return nil, mapUserLookupError(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.String("userID", user.ID))

	return user, nil
}

// DeleteUser removes a user. Removing an absent user is reported as not found.
func (srv *userService) DeleteUser(ctx context.Context, id string) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return mapUserLookupError(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", id))

	return nil
}

func mapUserLookupError(err error, message string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, message)
	}

	// Store errors are already wrapped with a stack by the repository.
	return errors.WithMessage(err, message)
}
