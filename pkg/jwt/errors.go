package jwt

import "errors"

var (
	ErrMissingSigningKey = errors.New("jwt: missing signing key")
	ErrInvalidFormat     = errors.New("jwt: invalid token format")
	ErrInvalidSignature  = errors.New("jwt: invalid signature")
	ErrClaimsDecode      = errors.New("jwt: failed to decode claims")
	ErrExpiredToken      = errors.New("jwt: token expired")
	ErrInvalidIssuer     = errors.New("jwt: invalid issuer")
	ErrInvalidAudience   = errors.New("jwt: invalid audience")
	ErrMissingToken      = errors.New("jwt: missing bearer token")
	ErrForbiddenRole     = errors.New("jwt: role not permitted")
)
