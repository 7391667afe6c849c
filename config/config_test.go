package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppConfig_SanitizeDefaultsEmptyConfig(t *testing.T) {
	var cfg AppConfig
	cfg.Sanitize()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownGrace)
	assert.Equal(t, 32, cfg.Store.Shards)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 1024, cfg.Auth.TokenCacheCapacity)
	assert.Equal(t, time.Second, cfg.Sweeper.Interval)
	assert.Equal(t, time.Hour, cfg.Sweeper.Retention)
}

func TestAnalysisConfig_SanitizeClampsRisk(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"negative", -5, 0},
		{"zero", 0, 0},
		{"in range", 60, 60},
		{"above max", 150, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := AnalysisConfig{SeedRisk: tt.in}
			c.Sanitize()
			assert.Equal(t, tt.want, c.SeedRisk)
		})
	}
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	t.Run("blank address disables metrics", func(t *testing.T) {
		c := ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "   "}
		c.Sanitize()
		assert.False(t, c.IsEnabled())
	})

	t.Run("enabled with address", func(t *testing.T) {
		c := ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "127.0.0.1:8125"}
		c.Sanitize()
		assert.True(t, c.IsEnabled())
	})

	t.Run("disabled stays disabled", func(t *testing.T) {
		c := ObservabilityMetricsConfig{Enabled: false, StatsdAddress: "127.0.0.1:8125"}
		c.Sanitize()
		assert.False(t, c.IsEnabled())
	})
}

func TestSweeperConfig_SanitizeFloorsInterval(t *testing.T) {
	c := SweeperConfig{Enabled: true, Interval: 10 * time.Millisecond, Retention: -1}
	c.Sanitize()
	assert.Equal(t, time.Second, c.Interval)
	assert.Equal(t, time.Hour, c.Retention)
}
