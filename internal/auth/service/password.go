package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the fixed bcrypt work factor. The original deployment used 12;
// bumping it invalidates no stored hashes because the cost is embedded in
// each digest.
const hashCost = 12

// PasswordHasher wraps bcrypt hashing and verification. Each Hash call
// embeds a fresh random salt in the digest.
type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

func (PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A mismatch is
// a plain false, never an error.
func (PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
