package config

import "time"

// AuthConfig controls the stub login collaborator: opaque token issuance and
// the in-process cache of issued access tokens.
type AuthConfig struct {
	// TokenTTL is how long issued access tokens stay valid.
	TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"1h"`

	// TokenCacheCapacity bounds the issued-token cache.
	TokenCacheCapacity int `env:"AUTH_TOKEN_CACHE_CAPACITY" envDefault:"1024"`
}

// Sanitize applies guardrails to auth configuration values.
func (c *AuthConfig) Sanitize() {
	if c.TokenTTL <= 0 {
		c.TokenTTL = time.Hour
	}
	if c.TokenCacheCapacity <= 0 {
		c.TokenCacheCapacity = 1024
	}
}
