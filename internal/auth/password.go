package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/ansj1105/coin-csms-sub001/pkg/errors"
)

// bcryptCost is the cost factor for bcrypt password hashing.
const bcryptCost = 12

// PasswordHasher produces and verifies salted bcrypt password hashes. The
// hash record is self-describing: algorithm, cost, and salt are embedded, so
// verification needs no external parameters.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the default cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcryptCost}
}

// Hash derives a one-way hash record from the plaintext secret. The secret
// itself is never stored or logged.
func (h *PasswordHasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", apperrors.InvalidInput("password must not be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		// bcrypt only keys on the first 72 bytes and rejects anything longer.
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.InvalidInput("password must not exceed 72 bytes")
		}
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify recomputes the hash with the parameters embedded in hashRecord and
// compares in constant time. Any mismatch, including a malformed hash record,
// reports false rather than an error.
func (h *PasswordHasher) Verify(secret, hashRecord string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashRecord), []byte(secret)) == nil
}
