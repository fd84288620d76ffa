package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordManager hashes and verifies passwords with bcrypt. Each hash
// carries its own random salt.
type PasswordManager struct {
	cost int
}

func NewPasswordManager() *PasswordManager {
	return &PasswordManager{
		cost: bcrypt.DefaultCost,
	}
}

// Hash hashes a plaintext password.
func (m *PasswordManager) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify checks a plaintext password against a stored hash.
func (m *PasswordManager) Verify(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
