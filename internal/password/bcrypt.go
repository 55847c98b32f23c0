// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/internkaksha/internkaksha-server/internal/model"
)

const (
	// DefaultCost is the bcrypt work factor used for new hashes.
	DefaultCost = 10
	// MaxPasswordBytes is the longest password bcrypt accepts.
	MaxPasswordBytes = 72
)

var (
	// ErrEmptyPassword is returned when hashing an empty password.
	ErrEmptyPassword = errors.New("password must not be empty")
	// ErrPasswordTooLong is returned when hashing a password longer than MaxPasswordBytes.
	ErrPasswordTooLong = errors.New("password must not exceed 72 bytes")
	// ErrMismatchedHashAndPassword is returned when a password does not match its hash.
	ErrMismatchedHashAndPassword = errors.New("password does not match")
)

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements PasswordHasher with a fixed work factor.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the given cost.
// Costs outside bcrypt's range fall back to DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash generates a salted hash of password.
func (b *Bcrypt) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}

	return string(h), nil
}

// Compare checks password against hash in constant time.
func (b *Bcrypt) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedHashAndPassword
		}
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}
