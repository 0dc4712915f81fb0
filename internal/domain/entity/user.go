// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a single registered account.
type User struct {
	ID           string    // Opaque identifier assigned by the store at creation.
	Name         string    // Display name, stored capitalized per word.
	Email        string    // Unique login identifier, stored lowercase.
	PasswordHash string    `json:"-"` // bcrypt digest of the password, never the plaintext.
	CreatedAt    time.Time // Maintained by the store on create.
	UpdatedAt    time.Time // Maintained by the store on every write.
}

// UserPatch is a partial update of a User. Nil fields are left untouched.
// Every set field is already normalized; a new password arrives as its digest.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the patch changes nothing that is persisted.
func (p *UserPatch) IsEmpty() bool {
	return p == nil || (p.Name == nil && p.Email == nil && p.PasswordHash == nil)
}
