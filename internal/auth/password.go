package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"weeks-worth/internal/shared"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 8

// ErrInvalidCredentials is returned when a username or password is wrong.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", shared.ErrUnauthorized)

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", shared.ErrValidation, MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %s", shared.ErrValidation, err)
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a stored hash with a candidate password.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
