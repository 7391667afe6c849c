package bootstrap

import (
	"log/slog"

	"github.com/depscout/depscout/config"
	"github.com/depscout/depscout/internal/analysis"
	"github.com/depscout/depscout/internal/cache"
	"github.com/depscout/depscout/internal/observability/statsd"
	"github.com/depscout/depscout/internal/service"
	"github.com/depscout/depscout/internal/store"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Jobs          *service.JobService
	Auth          *service.AuthService
	Sweeper       *service.SweeperService
	Registry      *store.Registry
	Observability ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink   *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// NewServices builds the full service graph from configuration.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	observability := buildObservability(logger, cfg.Observability)

	registry := store.NewRegistry(store.RegistryOptions{
		Shards: cfg.Store.Shards,
	})

	engine := analysis.NewSyntheticEngine(analysis.SyntheticEngineOptions{
		SeedRisk:       cfg.Analysis.SeedRisk,
		SynthesizeDeps: cfg.Analysis.SynthesizeDeps,
	})

	jobs := service.MustNewJobService(service.JobServiceOptions{
		Registry: registry,
		Producer: engine,
		Logger:   logger,
		Metrics:  observability.MetricsSink,
	})

	auth := service.MustNewAuthService(service.AuthServiceOptions{
		Tokens:   cache.New(cache.Options{Capacity: cfg.Auth.TokenCacheCapacity}),
		TokenTTL: cfg.Auth.TokenTTL,
		Logger:   logger,
	})

	var sweeper *service.SweeperService
	if cfg.Sweeper.Enabled {
		sweeper = service.MustNewSweeperService(service.SweeperServiceOptions{
			Registry: registry,
			Config:   cfg.Sweeper,
			Logger:   logger,
			Metrics:  observability.MetricsSink,
		})
	}

	return ServiceContainer{
		Jobs:          jobs,
		Auth:          auth,
		Sweeper:       sweeper,
		Registry:      registry,
		Observability: observability,
	}
}

// buildObservability configures the metrics adapter.
func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	var metricsSink *statsd.Client
	if cfg.Metrics.IsEnabled() {
		client, err := statsd.NewClient(statsd.Config{
			Enabled: true,
			Address: cfg.Metrics.StatsdAddress,
			Prefix:  cfg.Metrics.Prefix,
			Logger:  logger,
		})
		if err != nil {
			logger.Error("failed to initialise statsd client", "error", err)
		} else {
			metricsSink = client
		}
	}

	return ObservabilityContainer{
		MetricsSink:   metricsSink,
		MetricsConfig: cfg.Metrics,
	}
}
