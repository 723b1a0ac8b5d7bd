// Package passwords hashes login passwords with bcrypt.
package passwords

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinLength is the shortest password accepted at registration.
const MinLength = 8

var (
	// ErrTooShort is returned for passwords with fewer than MinLength bytes.
	ErrTooShort = fmt.Errorf("password must have at least %d characters", MinLength)

	// ErrTooLong is returned for passwords bcrypt cannot hash (more than 72 bytes).
	ErrTooLong = errors.New("password must not be longer than 72 bytes")
)

// Hasher hashes and verifies passwords with a fixed bcrypt cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with bcrypt.DefaultCost.
func NewHasher() Hasher {
	return Hasher{cost: bcrypt.DefaultCost}
}

// NewFastHasher returns a Hasher with bcrypt.MinCost, meant for tests.
func NewFastHasher() Hasher {
	return Hasher{cost: bcrypt.MinCost}
}

// Hash checks the length rules and returns the bcrypt hash of plain.
func (h Hasher) Hash(plain string) (string, error) {
	if len(plain) < MinLength {
		return "", ErrTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrTooLong
	}

	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Matches reports whether plain is the password behind hash.
func (h Hasher) Matches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
