// Package passhash implements the salted password hashing primitive used by
// the credential store: a hex-encoded 32-byte salt and a single SHA-256
// digest over salt || password.
//
// The scheme is deliberately simple and deterministic. It carries no
// iteration count and no memory-hard KDF, which makes it cheap to verify and
// trivial to reason about, at the cost of offering far less resistance to
// offline cracking than bcrypt or argon2id. Treat it as a floor, not a
// recommendation.
//
// # Usage
//
//	salt, err := passhash.GenerateSalt()
//	if err != nil {
//	    // secure random source unavailable; the operation must not proceed
//	}
//	hash := passhash.HashPassword(password, salt)
//
//	if passhash.VerifyPassword(candidate, hash, salt) {
//	    // authenticated
//	}
//
// # Error Handling
//
// GenerateSalt fails closed when crypto/rand is unavailable and reports
// ErrRandomSource (with the underlying error joined). Verification is a pure
// computation and cannot fail; it returns false for any mismatch.
//
// # Security Considerations
//
// Hash comparison uses crypto/subtle to keep verification constant-time.
// Salts must never be reused across password changes: regenerate the salt
// and hash together, as the credential store does.
package passhash
