// Package store provides the concurrent-safe, in-memory job registry: a
// sharded map from job id to the job record and its independent state cursor.
package store

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/depscout/depscout/internal/domain/lifecycle"
	"github.com/depscout/depscout/internal/domain/model"
	apperrors "github.com/depscout/depscout/internal/errors"
)

const defaultShardCount = 32

// entry pairs a job with its state cursor. entry.mu serializes cursor
// advancement so concurrent polls on the same id observe a total order of
// state changes with no duplicates and no lost advances.
type entry struct {
	mu     sync.Mutex
	job    *model.Job
	cursor *lifecycle.Cursor
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// RegistryOptions groups constructor options for Registry.
type RegistryOptions struct {
	// Shards is the number of map shards; defaults to 32 when <= 0.
	Shards int
	// Clock is the time source for last_updated stamps; defaults to real time.
	Clock TimeProvider
}

// Registry is the job store. Distinct job ids only contend on their shard's
// read lock; there is no global lock on the poll path.
type Registry struct {
	shards []*shard
	clock  TimeProvider
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts RegistryOptions) *Registry {
	count := opts.Shards
	if count <= 0 {
		count = defaultShardCount
	}
	clock := opts.Clock
	if clock == nil {
		clock = &RealTimeProvider{}
	}

	shards := make([]*shard, count)
	for i := range shards {
		shards[i] = &shard{entries: make(map[string]*entry)}
	}
	return &Registry{shards: shards, clock: clock}
}

// Insert registers a new job under its id with a fresh state cursor.
// Returns a Conflict error if the id already exists. The registry keeps its
// own deep copy, so later caller mutations cannot reach stored state.
func (r *Registry) Insert(job *model.Job) error {
	if job == nil || job.ID == "" {
		return apperrors.Validation("job id is required")
	}

	sh := r.shardFor(job.ID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, exists := sh.entries[job.ID]; exists {
		return apperrors.Conflictf("job %q already exists", job.ID)
	}
	sh.entries[job.ID] = &entry{
		job:    job.Clone(),
		cursor: lifecycle.NewCursor(),
	}
	return nil
}

// GetAndAdvance looks up a job, advances its state cursor one step, refreshes
// last_updated, and returns an immutable snapshot reflecting the new state.
// Polling past COMPLETED is idempotent: the terminal state is pinned and
// snapshots keep returning it. Returns a NotFound error for unknown ids.
func (r *Registry) GetAndAdvance(id string) (*model.Job, error) {
	sh := r.shardFor(id)
	sh.mu.RLock()
	e := sh.entries[id]
	sh.mu.RUnlock()

	if e == nil {
		return nil, apperrors.NotFoundf("job %q not found", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	status, err := e.cursor.Advance()
	if err != nil && !apperrors.IsExhausted(err) {
		return nil, err
	}
	e.job.Status = status

	// last_updated is monotonically non-decreasing even if the clock regresses.
	if now := model.NewEpoch(r.clock.Now()); e.job.LastUpdated.Before(now) {
		e.job.LastUpdated = now
	}

	return e.job.Clone(), nil
}

// Len returns the number of registered jobs.
func (r *Registry) Len() int {
	total := 0
	for _, sh := range r.shards {
		sh.mu.RLock()
		total += len(sh.entries)
		sh.mu.RUnlock()
	}
	return total
}

// SweepTerminal deletes jobs that reached the terminal state and were last
// updated before cutoff. Non-terminal jobs are never removed. Returns the
// number of jobs deleted.
func (r *Registry) SweepTerminal(cutoff time.Time) int {
	removed := 0
	for _, sh := range r.shards {
		sh.mu.Lock()
		for id, e := range sh.entries {
			e.mu.Lock()
			expired := e.cursor.Terminal() && e.job.LastUpdated.Time().Before(cutoff)
			e.mu.Unlock()
			if expired {
				delete(sh.entries, id)
				removed++
			}
		}
		sh.mu.Unlock()
	}
	return removed
}

func (r *Registry) shardFor(id string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return r.shards[h.Sum32()%uint32(len(r.shards))]
}
