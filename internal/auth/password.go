// internal/auth/password.go
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the platform has always used. The cost is
// embedded in the produced hash, so raising it later only affects new hashes.
const bcryptCost = 10

// HashPassword produces a salted one-way hash of the plaintext.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
