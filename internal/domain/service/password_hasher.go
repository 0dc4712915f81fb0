// Package service declares the stateless collaborators the account use cases
// depend on. Implementations live under internal/infra.
package service

// PasswordHasher turns plaintext passwords into self-describing digests that
// are safe to store, and checks candidates against them.
type PasswordHasher interface {
	// Hash returns a salted digest; hashing the same password twice yields
	// different digests.
	Hash(password string) (string, error)

	// Check reports whether password produced digest. A digest that cannot be
	// parsed never matches.
	Check(password, digest string) bool
}
