// Package utils provides general-purpose helper utilities used across
// different parts of the application: credential hashing and operation-ID
// generation.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSecret computes the credential hash stored on disk for both citizen
// secret codes and admin passwords: SHA-256 over plaintext concatenated with
// the global salt, hex-encoded.
//
// The scheme (one fixed salt, no per-record salt, fast hash) is dictated by
// the existing on-disk format and is a known limitation: a deployment that
// needs real credential security must move to per-record random salts and a
// slow/memory-hard KDF, which changes every stored hash.
func HashSecret(secret string, salt string) string {
	sum := sha256.Sum256([]byte(secret + salt))
	return hex.EncodeToString(sum[:])
}
