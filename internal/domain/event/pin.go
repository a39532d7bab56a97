package event

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// HashPIN derives the stored form of an admin PIN. PINs are never
// persisted in plaintext.
func HashPIN(pin string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(pin)))
	return hex.EncodeToString(sum[:])
}

// PINMatches compares a submitted PIN against the stored hash in
// constant time.
func (e Event) PINMatches(pin string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPIN(pin)), []byte(e.PINHash)) == 1
}
