// Package auth provides password hashing and the opaque tokens handed out
// at login.
package auth

import (
	"errors"

	"github.com/dmitrijs2005/pawsome/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned when a password exceeds bcrypt's 72 byte input limit.
var ErrPasswordTooLong = errors.New("password too long")

// PasswordHasher turns a plaintext password into a storable hash and checks
// candidates against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt. A zero Cost means
// bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{Cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(b), nil
}

// Verify compares in constant time. A malformed hash never verifies.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// RememberTokenBytes is the entropy of a remember-me token; its hex encoding
// is twice as long.
const RememberTokenBytes = 32

// NewRememberToken returns 64 random hex characters.
func NewRememberToken() (string, error) {
	return common.MakeRandHexString(RememberTokenBytes)
}
