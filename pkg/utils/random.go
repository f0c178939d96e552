package utils

import (
	"math/rand"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ShortCodeLength is the length of generated (non-alias) short codes.
const ShortCodeLength = 6

// GenerateShortCode generates a random alphanumeric string of fixed length.
// The top-level rand functions are safe for concurrent use.
func GenerateShortCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
