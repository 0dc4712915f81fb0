package credential

import (
	"sort"
	"strings"
)

// Field validation messages.
const (
	MsgInvalidName     = "name must be at least 3 characters"
	MsgInvalidEmail    = "invalid email format"
	MsgInvalidPassword = "password must contain at least 8 letters, digits or underscores in a row"
	MsgPasswordTooLong = "password must be at most 72 bytes"
)

// MaxPasswordBytes is the longest password bcrypt can digest.
const MaxPasswordBytes = 72

// ValidationErrors maps a field name to the reason it was rejected.
type ValidationErrors map[string]string

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// OrNil returns nil when no field failed, so callers can return it directly.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}

	return v
}

// ValidateName checks a raw display name.
func (v ValidationErrors) ValidateName(name string) ValidationErrors {
	if !IsValidName(name) {
		v["name"] = MsgInvalidName
	}

	return v
}

// ValidateEmail checks a raw email address.
func (v ValidationErrors) ValidateEmail(email string) ValidationErrors {
	if !IsValidEmail(strings.TrimSpace(email)) {
		v["email"] = MsgInvalidEmail
	}

	return v
}

// ValidatePassword checks a plaintext password.
func (v ValidationErrors) ValidatePassword(password string) ValidationErrors {
	switch {
	case !IsValidPassword(password):
		v["password"] = MsgInvalidPassword
	case len(password) > MaxPasswordBytes:
		v["password"] = MsgPasswordTooLong
	}

	return v
}

// ValidateNewUser checks every field required to create an account.
func ValidateNewUser(name, email, password string) error {
	return ValidationErrors{}.
		ValidateName(name).
		ValidateEmail(email).
		ValidatePassword(password).
		OrNil()
}
