package usecase

import "context"

// --- Input DTOs ---

// SignUpInput defines the data required to open a new account.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenOutput carries the access token issued on sign-up or sign-in.
type TokenOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for account registration and authentication.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*TokenOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*TokenOutput, error)
}
