// Package sessiontoken manages opaque, server-tracked session tokens: 64
// hex characters of secure randomness mapped to an owner and an expiry.
//
// A token's validity is decided solely by table lookup plus an expiry check;
// nothing about the owning account is consulted after issuance, so password
// or role changes never retroactively affect already-issued tokens. Expiry
// is enforced twice: lazily on every Validate, and eagerly by a periodic
// background sweep.
//
// # Architecture
//
//   - Manager: mutex-guarded map of token to (owner, expiry). The lock is
//     independent of the credential store's lock; no operation in this
//     module acquires both.
//   - Config: TTL and sweep interval, loadable from the environment.
//   - cleanup goroutine: ticker-driven sweep started by New, stopped by
//     Close. Each acquisition is brief and bounded by the entry count.
//
// # Usage
//
//	tokens := sessiontoken.New(
//	    sessiontoken.WithTTL(24*time.Hour),
//	    sessiontoken.WithCleanupInterval(time.Hour),
//	)
//	defer tokens.Close()
//
//	token, err := tokens.Generate(username) // only after authentication
//
//	if tokens.Validate(token) {
//	    owner, _ := tokens.Owner(token)
//	    _ = owner
//	}
//
//	tokens.Invalidate(token) // logout; idempotent
//
// # Error Handling
//
// Generate is the only fallible operation: it fails closed with
// ErrTokenGeneration when the secure random source is unavailable.
// Invalidate and CleanupExpired cannot fail.
package sessiontoken
