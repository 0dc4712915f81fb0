package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims carried by access tokens. The user ID travels in
// the registered "sub" claim.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID returns the subject the token was issued for.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token bound to the user.
	GenerateAccessToken(userID string) (string, error)

	// ValidateToken checks the signature (and expiry, when present) of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
