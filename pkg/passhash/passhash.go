package passhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// SaltLength is the number of random bytes drawn for each salt.
// Hex encoding doubles it to a 64-character string.
const SaltLength = 32

// GenerateSalt produces a hex-encoded salt from a cryptographically secure
// random source. It fails closed: if the secure source is unavailable the
// error is returned instead of silently degrading to a weaker generator.
func GenerateSalt() (string, error) {
	b := make([]byte, SaltLength)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrRandomSource, err)
	}
	return hex.EncodeToString(b), nil
}

// HashPassword computes hex(SHA-256(salt || password)) with the salt
// prepended as raw characters. A single digest is used intentionally: the
// scheme is reproducible and dependency-free, and documented as a minimum
// baseline rather than production-grade password storage.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword recomputes the hash for the given password and salt and
// compares it against the stored hash in constant time to avoid leaking
// match position through timing.
func VerifyPassword(password, hash, salt string) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
