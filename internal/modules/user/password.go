package user

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

// ValidatePassword checks password against the account password policy and
// returns a *PasswordPolicyError naming the first rule it breaks.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return &PasswordPolicyError{Rule: "Password must be longer than 8 characters"}
	}
	// bcrypt ignores everything past 72 bytes.
	if len(password) > maxPasswordLength {
		return &PasswordPolicyError{Rule: "Password must be less than 72 characters"}
	}
	if strings.TrimSpace(password) != password {
		return &PasswordPolicyError{Rule: "Password must not start or end with empty spaces"}
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasDigit {
		return &PasswordPolicyError{Rule: "Password must contain one upper case letter and one number"}
	}
	return nil
}

// HashPassword returns the salted bcrypt hash of password.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
