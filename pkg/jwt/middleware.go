package jwt

import (
	"net/http"
)

// TokenExtractorFunc defines a function that extracts a token from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// MiddlewareConfig configures JWT middleware behavior.
type MiddlewareConfig struct {
	Service   *Service           // token service for validation
	Extractor TokenExtractorFunc // token extraction strategy (defaults to Bearer)
}

// Middleware creates validation middleware with default Bearer token
// extraction. Every request passes through the same single validation path;
// authorization concerns such as role checks compose on top via RequireRole.
func Middleware(service *Service) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Service: service})
}

// MiddlewareWithConfig creates validation middleware with custom
// configuration. Any validation failure responds 401; the distinct failure
// cause stays on the error for logging, never in the status code.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	if config.Extractor == nil {
		config.Extractor = BearerExtractor
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := config.Extractor(r)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			result := config.Service.Validate(tokenString)
			if !result.Valid {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			ctx := SetToken(r.Context(), tokenString)
			ctx = SetClaims(ctx, result.Claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns middleware that allows the request through only when
// the verified claims carry the given role. It must be mounted after
// Middleware; an unauthenticated request gets 401, a wrong role 403.
func RequireRole(role string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			if !HasRole(claims, role) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// HasRole is the composable authorization predicate: it reports whether the
// claims carry exactly the given role.
func HasRole(claims *Claims, role string) bool {
	return claims != nil && claims.Role == role
}

// BearerExtractor extracts tokens from "Authorization: Bearer <token>"
// headers using the strict literal-prefix rule of ExtractBearerToken.
func BearerExtractor(r *http.Request) (string, error) {
	token := ExtractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// CookieExtractor creates a token extractor for cookie-based transport.
// Useful for browser applications where Authorization headers aren't practical.
func CookieExtractor(cookieName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			return "", ErrMissingToken
		}
		return cookie.Value, nil
	}
}

// HeaderExtractor creates a token extractor for custom headers.
func HeaderExtractor(headerName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.Header.Get(headerName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}
