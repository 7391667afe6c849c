package model

// Status is the analysis progression shared by jobs and package nodes.
type Status string

const (
	// StatusNew indicates analysis has been registered but not started.
	StatusNew Status = "NEW"
	// StatusPending indicates analysis is in flight.
	StatusPending Status = "PENDING"
	// StatusCompleted indicates analysis has finished. Terminal.
	StatusCompleted Status = "COMPLETED"
)

// Valid returns true if the Status is one of the defined lifecycle values.
func (s Status) Valid() bool {
	return s == StatusNew || s == StatusPending || s == StatusCompleted
}

// Job is a single asynchronous analysis request and its evolving result tree.
//
// ID and StartedAt are immutable after creation. Status is written only by the
// job's state cursor, and LastUpdated is non-decreasing across reads.
type Job struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	StartedAt   Epoch     `json:"started_at"`
	LastUpdated Epoch     `json:"last_updated"`
	Status      Status    `json:"status"`
	Packages    []Package `json:"packages"`
}

// Clone returns a deep copy of the job, including the full package tree.
// Store snapshots rely on this to stay immutable under concurrent polling.
func (j *Job) Clone() *Job {
	out := *j
	if j.Packages != nil {
		out.Packages = make([]Package, len(j.Packages))
		for i := range j.Packages {
			out.Packages[i] = j.Packages[i].Clone()
		}
	}
	return &out
}
