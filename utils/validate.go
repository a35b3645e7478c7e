package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSpecials = "@$!%*?&"

// IsEmailValid reports whether s looks like an email address.
func IsEmailValid(s string) bool {
	return emailRegex.MatchString(s)
}

// IsPasswordStrong enforces the password policy: at least 8 characters with an
// uppercase letter, a lowercase letter, a digit and a special character.
func IsPasswordStrong(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// IsPhoneValid accepts phone numbers between 10 and 15 characters.
func IsPhoneValid(s string) bool {
	return len(s) >= 10 && len(s) <= 15
}

// Slugify derives a URL slug from a name: lowercased, spaces to hyphens.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
