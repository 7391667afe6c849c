package config

import "time"

// SweeperConfig controls retention of terminal jobs in the in-memory store.
// Disabled by default: the core lifecycle model keeps jobs for the process
// lifetime, and eviction is opt-in for long-running deployments.
type SweeperConfig struct {
	// Enabled turns the retention sweeper on.
	Enabled bool `env:"SWEEPER_ENABLED" envDefault:"false"`

	// Interval is how often the sweeper scans the store.
	Interval time.Duration `env:"SWEEPER_INTERVAL" envDefault:"1m"`

	// Retention is how long COMPLETED jobs are kept after their last update.
	Retention time.Duration `env:"SWEEPER_RETENTION" envDefault:"1h"`
}

// Sanitize applies guardrails to sweeper configuration values.
func (c *SweeperConfig) Sanitize() {
	if c.Interval < time.Second {
		c.Interval = time.Second
	}
	if c.Retention <= 0 {
		c.Retention = time.Hour
	}
}
