package model

import "time"

// Epoch is a timestamp carried on the wire as integer epoch seconds.
// Second granularity matches the analysis API contract; sub-second precision
// is intentionally dropped so serialization round-trips losslessly.
type Epoch int64

// NewEpoch truncates t to epoch seconds.
func NewEpoch(t time.Time) Epoch {
	return Epoch(t.Unix())
}

// Time converts the epoch back to a time.Time in UTC.
func (e Epoch) Time() time.Time {
	return time.Unix(int64(e), 0).UTC()
}

// Before reports whether e is strictly earlier than other.
func (e Epoch) Before(other Epoch) bool {
	return e < other
}
