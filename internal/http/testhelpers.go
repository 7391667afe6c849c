package httpx

import (
	"testing"
	"time"

	"github.com/depscout/depscout/internal/analysis"
	"github.com/depscout/depscout/internal/cache"
	"github.com/depscout/depscout/internal/service"
	"github.com/depscout/depscout/internal/store"
)

// newTestServices wires real services over the in-memory store for handler
// and routing tests.
func newTestServices(t *testing.T) RouterServices {
	t.Helper()

	clock := store.NewFixedTimeProvider(time.Unix(1_700_000_000, 0))
	registry := store.NewRegistry(store.RegistryOptions{Clock: clock})
	engine := analysis.NewSyntheticEngine(analysis.SyntheticEngineOptions{
		SeedRisk:       60,
		SynthesizeDeps: true,
		Now:            clock.Now,
	})

	jobs := service.MustNewJobService(service.JobServiceOptions{
		Registry: registry,
		Producer: engine,
		Clock:    clock,
	})
	auth := service.MustNewAuthService(service.AuthServiceOptions{
		Tokens:   cache.New(cache.Options{Now: clock.Now}),
		TokenTTL: time.Hour,
	})

	return RouterServices{Jobs: jobs, Auth: auth}
}
