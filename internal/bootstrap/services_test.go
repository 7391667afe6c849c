package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscout/depscout/config"
)

func testConfig() *config.AppConfig {
	cfg := &config.AppConfig{}
	cfg.Sanitize()
	return cfg
}

func TestNewServices(t *testing.T) {
	t.Run("builds the full graph", func(t *testing.T) {
		services := NewServices(&ServiceDeps{Config: testConfig()})

		require.NotNil(t, services.Jobs)
		require.NotNil(t, services.Auth)
		require.NotNil(t, services.Registry)
		assert.Nil(t, services.Sweeper, "sweeper is opt-in")
		assert.Nil(t, services.Observability.MetricsSink, "metrics are opt-in")
	})

	t.Run("enables the sweeper from config", func(t *testing.T) {
		cfg := testConfig()
		cfg.Sweeper.Enabled = true
		cfg.Sweeper.Interval = time.Minute
		cfg.Sweeper.Retention = time.Hour

		services := NewServices(&ServiceDeps{Config: cfg})
		require.NotNil(t, services.Sweeper)
	})
}

func TestNewHTTPServer(t *testing.T) {
	cfg := testConfig()
	services := NewServices(&ServiceDeps{Config: cfg})

	server := NewHTTPServer(&HTTPServerConfig{Config: cfg, Services: services})
	require.NotNil(t, server)
	assert.Equal(t, cfg.HTTP.Addr, server.Addr)
	assert.Equal(t, cfg.HTTP.ReadTimeout, server.ReadTimeout)
	assert.NotNil(t, server.Handler)
}
