package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base36 alphabet: 0-9, a-z
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// ComplaintIDLength is the length of generated complaint IDs.
	ComplaintIDLength = 9
)

// Generate creates a random base36 ID of the given length.
// IDs are best-effort unique; callers do not check for collisions.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = ComplaintIDLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// NewComplaintID generates a new complaint ID.
func NewComplaintID() (string, error) {
	return Generate(ComplaintIDLength)
}

// IsValid reports whether s looks like an ID produced by Generate.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
