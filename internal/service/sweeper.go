package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/depscout/depscout/config"
	"github.com/depscout/depscout/internal/observability/metrics"
	"github.com/depscout/depscout/internal/observability/statsd"
	"github.com/depscout/depscout/internal/store"
)

// SweeperServiceOptions groups dependencies for SweeperService.
type SweeperServiceOptions struct {
	Registry JobRegistry          // Required: job store to sweep
	Config   config.SweeperConfig // Required: interval and retention
	Clock    store.TimeProvider   // Optional: time source, defaults to real time
	Logger   *slog.Logger         // Optional: structured logger
	Metrics  statsd.Sink          // Optional: metrics sink
}

// SweeperService periodically removes terminal jobs that have not been
// polled within the retention window. Jobs that never reach a terminal
// status are kept indefinitely.
type SweeperService struct {
	registry JobRegistry
	cfg      config.SweeperConfig
	clock    store.TimeProvider
	logger   *slog.Logger
	metrics  statsd.Sink
}

// NewSweeperService constructs a new SweeperService.
func NewSweeperService(opts SweeperServiceOptions) (*SweeperService, error) {
	if opts.Registry == nil {
		return nil, errors.New("JobRegistry is required")
	}

	clock := opts.Clock
	if clock == nil {
		clock = &store.RealTimeProvider{}
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "sweeper")
	}

	return &SweeperService{
		registry: opts.Registry,
		cfg:      opts.Config,
		clock:    clock,
		logger:   logger,
		metrics:  opts.Metrics,
	}, nil
}

// MustNewSweeperService constructs a new SweeperService and panics on error.
func MustNewSweeperService(opts SweeperServiceOptions) *SweeperService {
	svc, err := NewSweeperService(opts)
	if err != nil {
		panic(fmt.Sprintf("failed to create SweeperService: %v", err))
	}
	return svc
}

// Run sweeps on the configured interval until ctx is cancelled. It blocks,
// so call it from its own goroutine or an errgroup.
func (s *SweeperService) Run(ctx context.Context) error {
	if s.logger != nil {
		s.logger.InfoContext(ctx, "sweeper started",
			"interval", s.cfg.Interval,
			"retention", s.cfg.Retention,
		)
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if s.logger != nil {
				s.logger.InfoContext(ctx, "sweeper stopped")
			}
			return nil
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce removes terminal jobs older than the retention window and
// returns how many were removed.
func (s *SweeperService) SweepOnce(ctx context.Context) int {
	cutoff := s.clock.Now().Add(-s.cfg.Retention)
	removed := s.registry.SweepTerminal(cutoff)
	if removed > 0 {
		if s.logger != nil {
			s.logger.InfoContext(ctx, "terminal jobs swept",
				"removed", removed,
				"remaining", s.registry.Len(),
			)
		}
		metrics.EmitSweep(s.metrics, removed)
	}
	return removed
}
