package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"USER@EXAMPLE.COM", true},
		{"first.last+tag@sub.example.co", true},
		{"a_b%c-d@x.io", true},
		{"not-an-email", false},
		{"user@example", false},
		{"user@example.c", false},
		{"@example.com", false},
		{"user name@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"short", false},
		{"longenough1", true},
		{"12345678", true},
		{"under_score", true},
		{"abc-defg-hij", false},
		{"!!!abcdefgh!!!", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPassword(tt.password))
		})
	}
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Jane"))
	assert.True(t, IsValidName("Zoë"))
	assert.False(t, IsValidName("Jo"))
	assert.False(t, IsValidName("  J  "))
	assert.False(t, IsValidName(""))
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jane doe", "Jane Doe"},
		{"hElLo WoRLd", "Hello World"},
		{"JANE   DOE", "Jane Doe"},
		{"jane\tdoe\nsmith", "Jane Doe Smith"},
		{"élodie dupont", "Élodie Dupont"},
		{" leading", " Leading"},
		{"jane\u00a0doe", "Jane Doe"},
		{"jane\vdoe", "Jane Doe"},
		{"jane\u2003\u3000doe", "Jane Doe"},
		{"jane\u2028doe\ufeffsmith", "Jane Doe Smith"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Capitalize(tt.in))
		})
	}
}

func TestCapitalize_Idempotent(t *testing.T) {
	inputs := []string{
		"jane doe",
		"  many   spaces  here ",
		"MiXeD cAsE\twith\ttabs",
		"o'neil mcdonald",
		"ßtraße",
		"ann\u00a0lee",
		"",
		" ",
	}

	for _, in := range inputs {
		once := Capitalize(in)
		assert.Equal(t, once, Capitalize(once), "input %q", in)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@x.com", NormalizeEmail("  JANE@X.COM "))
	assert.Equal(t, "jane@x.com", NormalizeEmail("jane@x.com"))
}
