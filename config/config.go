// Package config defines the environment-driven configuration for the
// depscout analysis service.
package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config files for
// the available variables:
//   - http.go: HTTP server configuration
//   - analysis.go: synthetic analysis engine configuration
//   - auth.go: login/token issuance configuration
//   - sweeper.go: terminal-job retention configuration
//   - observability.go: metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, text log format).
	IsDev bool `env:"DEV" envDefault:"false"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Store configuration
	Store StoreConfig

	// Analysis engine configuration
	Analysis AnalysisConfig

	// Auth collaborator configuration
	Auth AuthConfig

	// Retention sweeper configuration
	Sweeper SweeperConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// StoreConfig controls the in-memory job registry.
type StoreConfig struct {
	// Shards is the number of registry map shards.
	Shards int `env:"STORE_SHARDS" envDefault:"32"`
}

// Sanitize applies guardrails to store configuration values.
func (c *StoreConfig) Sanitize() {
	if c.Shards <= 0 {
		c.Shards = 32
	}
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Store.Sanitize()
	c.Analysis.Sanitize()
	c.Auth.Sanitize()
	c.Sweeper.Sanitize()
	c.Observability.Sanitize()
}
