// Package lifecycle implements the job state machine: a strictly linear
// progression NEW → PENDING → COMPLETED with an explicit per-job cursor.
package lifecycle

import (
	"github.com/depscout/depscout/internal/domain/model"
	apperrors "github.com/depscout/depscout/internal/errors"
)

// Sequence is the full lifecycle in order. COMPLETED is terminal; there is
// exactly one legal transition out of each non-terminal state.
var Sequence = []model.Status{model.StatusNew, model.StatusPending, model.StatusCompleted}

// Cursor tracks one job's progression through Sequence. Each job owns an
// independent cursor; cursors are not safe for concurrent use on their own,
// callers serialize access (the store holds a per-entry lock).
type Cursor struct {
	// idx is the position of the last emitted status; -1 before the first advance.
	idx int
}

// NewCursor returns a cursor positioned before the first state, so the first
// Advance observes NEW.
func NewCursor() *Cursor {
	return &Cursor{idx: -1}
}

// Current returns the last emitted status, or NEW if the cursor has not
// advanced yet.
func (c *Cursor) Current() model.Status {
	if c.idx < 0 {
		return Sequence[0]
	}
	return Sequence[c.idx]
}

// Terminal reports whether the cursor has reached the end of Sequence.
func (c *Cursor) Terminal() bool {
	return c.idx >= len(Sequence)-1
}

// Advance moves the cursor one step and returns the newly observed status.
// Once the sequence is exhausted it returns the terminal status together with
// an Exhausted error; the state never regresses and never skips.
func (c *Cursor) Advance() (model.Status, error) {
	if c.Terminal() {
		return Sequence[len(Sequence)-1], apperrors.Exhausted("status sequence exhausted")
	}
	c.idx++
	return Sequence[c.idx], nil
}
