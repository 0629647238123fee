package util

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is deliberately above the library default so brute-forcing a
// leaked hash stays expensive.
const bcryptCost = 12

// MinPasswordLength is the only password rule the API enforces.
const MinPasswordLength = 6

// ValidatePassword checks the minimum-length rule.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errors.New("password must be at least 6 characters long")
	}
	return nil
}

// HashPassword derives a salted bcrypt hash of the password.
func HashPassword(password string) ([]byte, error) {
	if len(password) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
}

// VerifyPassword compares a candidate password against a stored hash using
// bcrypt's own constant-time comparison. Raw strings are never compared.
func VerifyPassword(password string, hash []byte) bool {
	if len(password) == 0 || len(hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
