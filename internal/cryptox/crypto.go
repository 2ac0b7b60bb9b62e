// Package cryptox derives and checks password verifiers for locally stored
// accounts.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of salts returned by NewSalt.
const SaltSize = 16

// NewSalt returns SaltSize random bytes.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey stretches password with Argon2id into a 32-byte key.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key so the key itself is never stored.
func MakeVerifier(key []byte) []byte {
	sum := sha256.Sum256(key)
	return sum[:]
}

// CheckPassword reports whether password matches verifier under salt.
// The comparison runs in constant time.
func CheckPassword(password, salt, verifier []byte) bool {
	got := MakeVerifier(DeriveKey(password, salt))
	return subtle.ConstantTimeCompare(got, verifier) == 1
}
