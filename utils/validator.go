// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// EmailDomain returns the lowercased domain part of an email address.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// ValidateEmailDomain checks the address against the registration
// allow-list. Only official campus addresses may register.
func ValidateEmailDomain(email string, allowed map[string]bool) bool {
	if !ValidateEmail(email) {
		return false
	}
	return allowed[EmailDomain(email)]
}

// ValidatePassword checks password strength
func ValidatePassword(password string) (bool, string) {
	if len(strings.TrimSpace(password)) < 6 {
		return false, "Password must be at least 6 characters"
	}

	return true, ""
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
