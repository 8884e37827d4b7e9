package crypto

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when hashing an empty secret.
var ErrEmptyPassword = errors.New("password cannot be empty")

// ErrPasswordTooLong is returned for secrets over bcrypt's 72 byte input limit.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// HashPassword hashes a password using bcrypt with the given cost
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a password against its hash
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// IsHash reports whether s is already a bcrypt hash. It asks bcrypt to parse the
// value instead of sniffing a version prefix.
func IsHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}

// EnsureHashed returns s unchanged when it is already a bcrypt hash and hashes it otherwise.
func EnsureHashed(s string, cost int) (string, error) {
	if IsHash(s) {
		return s, nil
	}
	return HashPassword(s, cost)
}

// NewAuthenticationKey returns a fresh random credential token (UUID v4).
func NewAuthenticationKey() string {
	return uuid.NewString()
}
