package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// JWT header constants required by RFC 7519
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256" // HMAC-SHA256 chosen for security/performance balance
)

// Header represents the JWT header as defined in RFC 7515
type Header struct {
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
}

// Claims is the identity assertion carried in the token payload. It is
// self-contained: validity is entirely recomputable from the token bytes,
// the shared secret, and the clock. No server-side registry exists, and
// consequently no revocation either.
type Claims struct {
	Subject   string `json:"sub"`      // user ID
	Username  string `json:"username"` // display identity
	Role      string `json:"role"`     // authorization role, checked by the caller
	IssuedAt  int64  `json:"iat"`      // Unix timestamp when the token was minted
	ExpiresAt int64  `json:"exp"`      // Unix timestamp when the token expires
	Issuer    string `json:"iss"`
	Audience  string `json:"aud"`
}

// ValidationResult reports the outcome of Validate. When Valid is false, Err
// names the exact failure for logging; HTTP layers should collapse every
// failure to a single unauthorized response.
type ValidationResult struct {
	Valid  bool
	Claims *Claims
	Err    error
}

// Service signs and verifies compact HS256 tokens. It holds no mutable state
// after construction and is safe for unlimited concurrent use without
// synchronization.
type Service struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

// Option configures a Service during construction.
type Option func(*Service)

// WithClock overrides the time source used for iat/exp stamping and expiry
// checks. Intended for tests that need deterministic tokens.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// New creates a JWT service bound to a shared secret, an issuer, and an
// audience. The secret should be at least 32 bytes for adequate security
// with HMAC-SHA256; compromise of the secret compromises every token ever
// issued with it.
func New(secret, issuer, audience string, opts ...Option) (*Service, error) {
	if secret == "" {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewFromConfig creates a JWT service from environment-loadable Config.
func NewFromConfig(cfg Config) (*Service, error) {
	return New(cfg.Secret, cfg.Issuer, cfg.Audience)
}

// Generate mints a signed token for the given identity, valid for
// expiresInHours from now. The output is deterministic: equal inputs signed
// with the same secret at the same instant produce byte-identical tokens.
func (s *Service) Generate(userID, username, role string, expiresInHours int) (string, error) {
	iat := s.now().Unix()

	claims := Claims{
		Subject:   userID,
		Username:  username,
		Role:      role,
		IssuedAt:  iat,
		ExpiresAt: iat + int64(expiresInHours)*3600,
		Issuer:    s.issuer,
		Audience:  s.audience,
	}

	headerJSON, err := json.Marshal(Header{Algorithm: HeaderAlgorithm, Type: HeaderType})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	// Compact serialization: base64url(header).base64url(claims).base64url(sig)
	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// Validate checks a compact token and returns the embedded claims on
// success. Checks run in a fixed order, short-circuiting on the first
// failure: segment count, signature, claim decode, expiry, issuer, audience.
// Tampering with any segment therefore surfaces as a signature error, never
// as a decode or expiry error.
func (s *Service) Validate(token string) ValidationResult {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ValidationResult{Err: ErrInvalidFormat}
	}

	// Signature is verified against the raw decoded bytes in constant time.
	payload := parts[0] + "." + parts[1]
	expected := hmacSHA256(s.secret, payload)
	provided, err := base64URLDecode(parts[2])
	if err != nil {
		return ValidationResult{Err: ErrInvalidSignature}
	}
	if subtle.ConstantTimeCompare(provided, expected) != 1 {
		return ValidationResult{Err: ErrInvalidSignature}
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return ValidationResult{Err: errors.Join(ErrClaimsDecode, err)}
	}

	var claims Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return ValidationResult{Err: errors.Join(ErrClaimsDecode, err)}
	}

	if s.now().Unix() > claims.ExpiresAt {
		return ValidationResult{Err: ErrExpiredToken}
	}

	if claims.Issuer != s.issuer {
		return ValidationResult{Err: ErrInvalidIssuer}
	}

	if claims.Audience != s.audience {
		return ValidationResult{Err: ErrInvalidAudience}
	}

	return ValidationResult{Valid: true, Claims: &claims}
}

// ExtractBearerToken returns the token portion of an Authorization header
// value, recognizing only the exact literal prefix "Bearer " (capital B,
// single trailing space). Any other shape yields the empty string.
func ExtractBearerToken(headerValue string) string {
	token, ok := strings.CutPrefix(headerValue, "Bearer ")
	if !ok {
		return ""
	}
	return token
}

// sign creates a base64url-encoded HMAC-SHA256 signature for the payload.
func (s *Service) sign(payload string) string {
	return base64URLEncode(hmacSHA256(s.secret, payload))
}

func hmacSHA256(key []byte, data string) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(data))
	return h.Sum(nil)
}

// base64URLEncode encodes data using base64url encoding without padding,
// as required by RFC 7515.
func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// base64URLDecode decodes base64url data, restoring padding to a multiple
// of 4 as needed. Token segments are minted without padding, but stray
// padding on input is tolerated.
func base64URLDecode(s string) ([]byte, error) {
	if n := len(s) % 4; n != 0 {
		s += strings.Repeat("=", 4-n)
	}
	return base64.URLEncoding.DecodeString(s)
}
