package auth

import (
	"testing"
	"time"

	"account/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Access: secret},
		Auth:      &config.AuthConfig{AccessTokenTTL: ttl},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)

	userID := "65f1c0ffee0000000000beef"
	token, err := jwtService.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID())
	assert.NotNil(t, claims.IssuedAt)
	assert.Nil(t, claims.ExpiresAt, "tokens carry no expiry unless a TTL is configured")
}

func TestJWTService_TTLAddsExpiry(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret", 15*time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	impl.now = func() time.Time { return issued }

	token, err := svc.GenerateAccessToken("user-1")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, issued.Add(15*time.Minute).Unix(), claims.ExpiresAt.Unix())

	impl.now = func() time.Time { return issued.Add(time.Hour) }
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("secret", 0))
	require.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-one", 0))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-two", 0))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret", 0))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	assert.Error(t, err)
}

func TestJWTService_EmptySubject(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret", 0))
	require.NoError(t, err)

	_, err = svc.GenerateAccessToken("")
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	// Should fail to create service
	jwtService, err := NewJWTService(newTestJWTConfig("", 0))
	assert.ErrorIs(t, err, ErrMissingSecret)
	assert.Nil(t, jwtService)

	jwtService, err = NewJWTService(nil)
	assert.ErrorIs(t, err, ErrMissingSecret)
	assert.Nil(t, jwtService)
}
