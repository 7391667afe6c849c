// Package metrics standardises metric names and tagging for job lifecycle events.
package metrics

import (
	"time"

	"github.com/depscout/depscout/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// SubmissionMetric captures details about one submission for metric emission.
type SubmissionMetric struct {
	Result   string
	Packages int
	Duration time.Duration
}

// EmitSubmission emits standardised submission metrics.
func EmitSubmission(sink statsd.Sink, in SubmissionMetric) {
	if sink == nil {
		return
	}
	tags := map[string]string{"result": in.Result}
	sink.Count("jobs.submitted", 1, tags)
	if in.Result == ResultSuccess {
		sink.Gauge("jobs.submission_size", float64(in.Packages), nil)
	}
	if in.Duration > 0 {
		sink.Timing("jobs.submit", in.Duration, tags)
	}
}

// PollMetric captures details about one status poll for metric emission.
type PollMetric struct {
	Result   string
	Status   string
	Duration time.Duration
}

// EmitPoll emits standardised status-poll metrics.
func EmitPoll(sink statsd.Sink, in PollMetric) {
	if sink == nil {
		return
	}
	tags := map[string]string{"result": in.Result}
	if in.Status != "" {
		tags["status"] = in.Status
	}
	sink.Count("jobs.polled", 1, tags)
	if in.Duration > 0 {
		sink.Timing("jobs.poll", in.Duration, tags)
	}
}

// EmitSweep emits the count of jobs removed by a retention sweep.
func EmitSweep(sink statsd.Sink, removed int) {
	if sink == nil || removed <= 0 {
		return
	}
	sink.Count("jobs.reaped", int64(removed), nil)
}
