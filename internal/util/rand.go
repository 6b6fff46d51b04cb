package util

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomID returns length random bytes, hex encoded.
func GenerateRandomID(length int) string {
	b := make([]byte, length)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
