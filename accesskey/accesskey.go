// Package accesskey generates and verifies customer capability tokens.
// The plaintext key leaves the process exactly once; the store keeps only
// the SHA-256 digest, and lookups filter on the digest of the presented key.
package accesskey

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// Length of the plaintext key in characters (32 random bytes, hex encoded).
const Length = 64

// Generate returns a fresh plaintext key and its stored digest.
func Generate() (plain, digest string, err error) {
	buf := make([]byte, Length/2)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	plain = hex.EncodeToString(buf)
	return plain, Digest(plain), nil
}

// Digest is the verifiable form persisted instead of the plaintext.
func Digest(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
