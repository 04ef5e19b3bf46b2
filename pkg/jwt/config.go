package jwt

// Config holds the token service settings. The secret is shared between
// every issuing and verifying process; issuer and audience pin tokens to
// this deployment.
type Config struct {
	Secret   string `env:"JWT_SECRET,required"`
	Issuer   string `env:"JWT_ISSUER" envDefault:"authcore"`
	Audience string `env:"JWT_AUDIENCE" envDefault:"authcore_users"`

	// ExpiresInHours is the default token lifetime handed to Generate by
	// callers that take the lifetime from configuration.
	ExpiresInHours int `env:"JWT_EXPIRES_IN_HOURS" envDefault:"24"`
}
