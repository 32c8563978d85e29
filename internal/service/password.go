// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// seams for tests
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword hashes a plaintext password with bcrypt at the given cost.
// The returned string embeds algorithm, cost and salt, so verification
// needs nothing but the hash itself.
func HashPassword(password string, cost int) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword checks a plaintext password against a bcrypt hash.
// Returns nil on match.
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}
