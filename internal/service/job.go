// Package service provides the business logic layer for the depscout
// analysis API: submission orchestration, status polling, token issuance,
// and store retention.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/depscout/depscout/internal/analysis"
	"github.com/depscout/depscout/internal/domain/model"
	apperrors "github.com/depscout/depscout/internal/errors"
	"github.com/depscout/depscout/internal/observability/metrics"
	"github.com/depscout/depscout/internal/observability/statsd"
	"github.com/depscout/depscout/internal/store"
)

// JobRegistry is the port to the job store.
type JobRegistry interface {
	Insert(job *model.Job) error
	GetAndAdvance(id string) (*model.Job, error)
	SweepTerminal(cutoff time.Time) int
	Len() int
}

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	Registry JobRegistry             // Required: job store
	Producer analysis.ResultProducer // Required: analysis result producer
	Clock    store.TimeProvider      // Optional: time source, defaults to real time
	Logger   *slog.Logger            // Optional: structured logger
	Metrics  statsd.Sink             // Optional: metrics sink (StatsD-compatible)

	// DefaultUserID is the principal recorded on jobs when the request carries
	// no auth context. Defaults to a per-process identity.
	DefaultUserID string
}

// JobService orchestrates the submission contract: validation, result
// production, job creation, store registration, and status retrieval.
type JobService struct {
	registry      JobRegistry
	producer      analysis.ResultProducer
	clock         store.TimeProvider
	logger        *slog.Logger
	metrics       statsd.Sink
	defaultUserID string
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) (*JobService, error) {
	if opts.Registry == nil {
		return nil, errors.New("JobRegistry is required")
	}
	if opts.Producer == nil {
		return nil, errors.New("ResultProducer is required")
	}

	clock := opts.Clock
	if clock == nil {
		clock = &store.RealTimeProvider{}
	}

	userID := opts.DefaultUserID
	if userID == "" {
		userID = uuid.NewString()
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "job_service")
	}

	return &JobService{
		registry:      opts.Registry,
		producer:      opts.Producer,
		clock:         clock,
		logger:        logger,
		metrics:       opts.Metrics,
		defaultUserID: userID,
	}, nil
}

// MustNewJobService constructs a new JobService and panics on error.
// Use this when you're certain the options are valid (e.g., in main.go).
func MustNewJobService(opts JobServiceOptions) *JobService {
	svc, err := NewJobService(opts)
	if err != nil {
		panic(fmt.Sprintf("failed to create JobService: %v", err))
	}
	return svc
}

// Submit validates a submission, produces its result tree, and registers a
// fresh job. Validation failure never registers a job. Returns the new job id.
func (s *JobService) Submit(ctx context.Context, req *model.SubmitRequest) (string, error) {
	start := s.clock.Now()

	if err := req.Validate(); err != nil {
		s.emitSubmission(metrics.ResultError, 0, start)
		return "", err
	}

	packages, err := s.producer.Produce(ctx, req.Packages)
	if err != nil {
		s.emitSubmission(metrics.ResultError, 0, start)
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "produce analysis result")
	}

	now := model.NewEpoch(s.clock.Now())
	job := &model.Job{
		ID:          uuid.NewString(),
		UserID:      s.defaultUserID,
		StartedAt:   now,
		LastUpdated: now,
		// The state cursor is the sole source of truth for status; NEW is the
		// first value it will emit.
		Status:   model.StatusNew,
		Packages: packages,
	}

	if err := s.registry.Insert(job); err != nil {
		// An id collision means uuid generation is broken; callers cannot
		// recover from it and it must never surface as a client error.
		s.emitSubmission(metrics.ResultError, 0, start)
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "job id collision on insert", "id", job.ID, "error", err)
		}
		return "", apperrors.Wrapf(err, apperrors.ErrCodeInternal, "register job %s", job.ID)
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "job created",
			"id", job.ID,
			"packages", len(req.Packages),
		)
	}
	s.emitSubmission(metrics.ResultSuccess, len(req.Packages), start)
	return job.ID, nil
}

// Status retrieves a job snapshot, advancing its state cursor one step as a
// side effect of the read. Returns a NotFound error for unknown ids.
func (s *JobService) Status(ctx context.Context, jobID string) (*model.Job, error) {
	start := s.clock.Now()

	snap, err := s.registry.GetAndAdvance(jobID)
	if err != nil {
		s.emitPoll(metrics.ResultError, "", start)
		return nil, err
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "job polled", "id", jobID, "status", snap.Status)
	}
	s.emitPoll(metrics.ResultSuccess, string(snap.Status), start)
	return snap, nil
}

func (s *JobService) emitSubmission(result string, packages int, start time.Time) {
	metrics.EmitSubmission(s.metrics, metrics.SubmissionMetric{
		Result:   result,
		Packages: packages,
		Duration: s.clock.Now().Sub(start),
	})
}

func (s *JobService) emitPoll(result, status string, start time.Time) {
	metrics.EmitPoll(s.metrics, metrics.PollMetric{
		Result:   result,
		Status:   status,
		Duration: s.clock.Now().Sub(start),
	})
}
