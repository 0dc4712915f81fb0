package impl

import (
	"context"
	"log/slog"

	deliverycontext "account/internal/delivery/context"
	"account/internal/domain/credential"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	"account/internal/domain/service"
	"account/internal/errors"
	"account/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new account and returns a token bound to it.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.TokenOutput, error) {
	user, err := prepareNewUser(srv.hasher, input.Name, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Sign-up rejected", slog.Any("error", err))

		return nil, err
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to store new account", slog.String("email", user.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during sign-up")
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after sign-up", slog.String("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	srv.log(ctx).Info("Account registered", slog.String("userID", user.ID))

	return &usecase.TokenOutput{AccessToken: token}, nil
}

// SignIn verifies the credentials and returns a token for the matching account.
// An unknown email and a wrong password fail identically.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.TokenOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields
	}

	email := credential.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to load user during sign-in")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token on sign-in", slog.String("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	srv.log(ctx).Debug("User signed in", slog.String("userID", user.ID))

	return &usecase.TokenOutput{AccessToken: token}, nil
}
