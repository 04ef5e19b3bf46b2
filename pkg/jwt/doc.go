// Package jwt provides a stateless issuer and verifier for compact,
// self-contained bearer tokens signed with HMAC-SHA256, plus HTTP middleware
// and context helpers for consuming them.
//
// A token is three dot-separated base64url segments without padding: a fixed
// {"alg":"HS256","typ":"JWT"} header, a Claims payload (subject, username,
// role, iat, exp, issuer, audience), and the signature over the first two
// segments. The service keeps no registry: a token's validity is decided
// purely by recomputation against the shared secret and the clock, which
// also means there is no revocation short of rotating the secret.
//
// # Architecture
//
//   - Service: signs (Generate) and verifies (Validate) tokens; immutable
//     after construction and safe for unlimited concurrent use.
//   - ValidationResult: valid flag, claims, and the exact failure cause.
//   - middleware.go: a single validation middleware with pluggable token
//     extractors, and RequireRole as a separate, composable authorization
//     layer on top of it.
//   - context.go: helpers to carry the token and verified claims through
//     a request context.
//
// # Usage
//
//	svc, err := jwt.New(secret, "authcore", "authcore_users")
//	if err != nil {
//	    // handle error
//	}
//
//	token, err := svc.Generate(user.ID, user.Username, "admin", 24)
//
//	result := svc.Validate(token)
//	if !result.Valid {
//	    // errors.Is(result.Err, jwt.ErrExpiredToken) etc.
//	}
//
//	r.Use(jwt.Middleware(svc))
//	r.With(jwt.RequireRole("admin")).Get("/admin", adminHandler)
//
// # Error Handling
//
// Validate distinguishes format, signature, claim-decode, expiry, issuer,
// and audience failures through sentinel errors so logs can name the exact
// cause. The middleware collapses all of them to 401 Unauthorized; only a
// role mismatch differs, as 403 Forbidden.
//
// # Security Considerations
//
// Signature comparison is constant-time over the raw decoded bytes. The
// signature is checked before the payload is decoded, so malformed or
// tampered payloads are rejected without ever being parsed.
package jwt
