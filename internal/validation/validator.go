package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-]{3,30}$`)
)

// reservedUsernames cannot be registered
var reservedUsernames = map[string]bool{
	"admin":         true,
	"administrator": true,
	"root":          true,
	"system":        true,
	"api":           true,
	"support":       true,
}

// ValidateEmail checks address shape and length
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateUsername checks allowed characters, length and reserved names
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 3-30 characters of letters, digits, underscore or hyphen")
	}
	if reservedUsernames[strings.ToLower(username)] {
		return fmt.Errorf("username %q is reserved", username)
	}
	return nil
}

// ValidatePassword enforces length and character-class rules and rejects
// trivially weak patterns
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("password must contain an uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain a lowercase letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain a digit")
	}
	if !hasSpecial {
		return fmt.Errorf("password must contain a special character")
	}

	if hasRepeatedRun(password, 4) {
		return fmt.Errorf("password must not contain 4 or more repeated characters")
	}
	if hasSequentialRun(strings.ToLower(password), 4) {
		return fmt.Errorf("password must not contain sequential characters")
	}
	return nil
}

// hasRepeatedRun reports whether the same character appears n times in a row
func hasRepeatedRun(s string, n int) bool {
	count := 1
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			count++
			if count >= n {
				return true
			}
		} else {
			count = 1
		}
	}
	return false
}

// hasSequentialRun reports whether n consecutive ascending characters appear,
// like "abcd" or "1234"
func hasSequentialRun(s string, n int) bool {
	count := 1
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1]+1 {
			count++
			if count >= n {
				return true
			}
		} else {
			count = 1
		}
	}
	return false
}

// ValidateSiteRequest checks the required fields of a site payload
func ValidateSiteRequest(name, url, username, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("url is required")
	}
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
