package main

// Config holds the HTTP server settings. Token and session settings are
// loaded separately through their packages' own Config types.
type Config struct {
	Addr string `env:"AUTHD_ADDR" envDefault:":8080"`

	// SessionCookieName is the cookie carrying the opaque session token.
	SessionCookieName string `env:"AUTHD_SESSION_COOKIE" envDefault:"session_token"`

	// SecureCookies enables the Secure flag on session cookies
	// (recommended whenever TLS terminates in front of the server).
	SecureCookies bool `env:"AUTHD_SECURE_COOKIES" envDefault:"false"`

	// AdminUsers lists usernames granted the admin role in minted tokens.
	AdminUsers []string `env:"AUTHD_ADMIN_USERS" envSeparator:","`

	// Environment selects logging defaults: "development" or "production".
	Environment string `env:"AUTHD_ENV" envDefault:"development"`
}

func (c Config) roleFor(username string) string {
	for _, admin := range c.AdminUsers {
		if username == admin {
			return "admin"
		}
	}
	return "user"
}
