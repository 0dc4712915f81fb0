// Package credential holds the pure syntactic rules applied to account fields
// before anything is persisted.
package credential

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinNameLength is the shortest accepted display name, in runes.
const MinNameLength = 3

var (
	emailPattern = regexp.MustCompile(`(?i)^[0-9a-z._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

	// Unanchored on purpose: any run of eight word characters satisfies the rule.
	passwordPattern = regexp.MustCompile(`\w{8,}`)

	// ASCII whitespace plus vertical tab, the Unicode separators and the BOM.
	whitespace = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
)

// IsValidEmail reports whether candidate looks like local-part@domain.tld.
func IsValidEmail(candidate string) bool {
	return emailPattern.MatchString(candidate)
}

// IsValidPassword reports whether candidate contains at least eight
// consecutive letters, digits or underscores.
func IsValidPassword(candidate string) bool {
	return passwordPattern.MatchString(candidate)
}

// IsValidName reports whether the trimmed name has at least MinNameLength runes.
func IsValidName(candidate string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(candidate)) >= MinNameLength
}

// Capitalize upper-cases the first letter of every whitespace-separated word,
// lower-cases the rest and joins the words with single spaces.
func Capitalize(text string) string {
	words := whitespace.Split(text, -1)
	for i, word := range words {
		if word == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
	}

	return strings.Join(words, " ")
}

// NormalizeEmail returns the stored form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
