package auth

import (
	"testing"

	"account/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "password123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("longenough1")
	require.NoError(t, err)
	second, err := hasher.Hash("longenough1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("longenough1", first))
	assert.True(t, hasher.Check("longenough1", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "StrongPass123!"

	// Generate hash
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Malformed digests are a mismatch, never a panic
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
	assert.False(t, hasher.Check(password, "$2a$10$short"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
	assert.Equal(t, customCost, hasher.Cost())

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_CostClamped(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasherWithCost(1).Cost())
	assert.Equal(t, bcrypt.MaxCost, NewBcryptHasherWithCost(99).Cost())
}

func TestNewBcryptHasher_FromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}
	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, 5, hasher.Cost())

	defaultHasher, ok := NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, defaultHasher.Cost())
}

func TestBcryptHasher_OverlongPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// bcrypt rejects inputs over 72 bytes
	_, err := hasher.Hash(string(make([]byte, 73)))
	assert.Error(t, err)
}
