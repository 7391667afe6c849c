package config

// AnalysisConfig controls the synthetic analysis engine used until a real
// engine is wired in.
type AnalysisConfig struct {
	// SeedRisk is the risk score (0-100) assigned to synthesized nodes.
	SeedRisk int `env:"ANALYSIS_SEED_RISK" envDefault:"60"`

	// SynthesizeDeps fabricates child dependencies under every submitted
	// package so result trees exercise nesting.
	SynthesizeDeps bool `env:"ANALYSIS_SYNTHESIZE_DEPS" envDefault:"true"`
}

// Sanitize clamps analysis configuration to valid ranges.
func (c *AnalysisConfig) Sanitize() {
	if c.SeedRisk < 0 {
		c.SeedRisk = 0
	}
	if c.SeedRisk > 100 {
		c.SeedRisk = 100
	}
}
