package validation

import (
	"errors"
)

// MinPasswordLength applies to the admin credential only; there is a single
// operator account, so the policy follows the dashboard's historical minimum.
const MinPasswordLength = 6

// ValidatePassword validates the admin password.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errors.New("password must be at least 6 characters")
	}

	// bcrypt silently truncates passwords longer than 72 bytes
	if len(password) > 72 {
		return errors.New("password must not exceed 72 characters")
	}

	return nil
}
