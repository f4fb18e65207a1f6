package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashUserKey returns the hex sha256 of a user ID so raw identities (emails,
// provider subjects) never appear in cache keys or logs.
func HashUserKey(userID string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(userID)))
	return hex.EncodeToString(sum[:])
}
