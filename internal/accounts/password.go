package accounts

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordCost is the bcrypt work factor for newly stored hashes. Raising it
// only affects hashes written after the change; existing hashes keep the cost
// they were created with.
const passwordCost = 10

// HashPassword derives a salted one-way hash from the plaintext. The salt is
// randomised per call, so two hashes of the same plaintext are never equal.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordCost)
	if err != nil {
		return "", fmt.Errorf("accounts: hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash. This
// is the only valid way to verify a password; hashes must never be compared
// to plaintext with string equality.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
