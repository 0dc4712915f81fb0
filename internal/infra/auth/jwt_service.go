package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"account/config"
	"account/internal/domain/service"
	"account/internal/errors"
)

// ErrMissingSecret is returned at construction when no signing secret is configured.
var ErrMissingSecret = errors.New("jwt access secret must be provided")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Zero means tokens carry no exp claim.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It fails when the secret is absent so the application refuses to start
// instead of failing on the first sign-up or login.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, ErrMissingSecret
	}

	var ttl time.Duration
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken signs a token whose subject is the user ID.
func (s *jwtService) GenerateAccessToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("cannot issue a token without a subject")
	}

	issuedAt := s.now()
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}
	if s.accessTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(s.accessTTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string against the access secret.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("token carries no subject")
	}

	return claims, nil
}
