package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

// fixtureTree builds a nested package tree exercising null license, null and
// populated heuristic data, opaque vulnerabilities, and two levels of nesting.
func fixtureTree(now Epoch) Package {
	return Package{
		Name:        "foo",
		Version:     "1.0.0",
		Type:        "npm",
		Status:      StatusNew,
		Risk:        intPtr(60),
		License:     nil,
		LastUpdated: now,
		Heuristics: []Heuristic{
			{Score: 3.14, Data: map[string]any{"foo": "bar"}},
		},
		Vulnerabilities: []json.RawMessage{},
		Dependencies: []Package{
			{
				Name:            "bar",
				Version:         "2.3.4",
				Type:            "npm",
				Status:          StatusCompleted,
				Risk:            intPtr(60),
				LastUpdated:     now,
				Heuristics:      []Heuristic{},
				Vulnerabilities: []json.RawMessage{json.RawMessage(`{"cve":"CVE-2021-0001"}`)},
			},
			{
				Name:            "baz",
				Version:         "9.8.7",
				Type:            "npm",
				Status:          StatusNew,
				Risk:            intPtr(60),
				LastUpdated:     now,
				Heuristics:      []Heuristic{{Score: 42, Data: nil}},
				Vulnerabilities: []json.RawMessage{},
			},
		},
	}
}

func TestPackage_JSONRoundTrip(t *testing.T) {
	now := NewEpoch(time.Now())
	original := fixtureTree(now)

	b, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Package
	require.NoError(t, json.Unmarshal(b, &decoded))

	assert.Equal(t, original, decoded)
}

func TestPackage_NullFieldsOnWire(t *testing.T) {
	now := NewEpoch(time.Unix(1700000000, 0))
	b, err := json.Marshal(fixtureTree(now))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	// license: null must be present, not absent.
	v, ok := raw["license"]
	require.True(t, ok, "license key must be serialized")
	assert.Nil(t, v)

	// Leaf nodes omit the dependencies key entirely.
	deps, ok := raw["dependencies"].([]any)
	require.True(t, ok)
	leaf, ok := deps[0].(map[string]any)
	require.True(t, ok)
	_, hasDeps := leaf["dependencies"]
	assert.False(t, hasDeps, "leaf node must not serialize a dependencies key")

	// heuristic data: null is meaningful on the wire.
	baz, ok := deps[1].(map[string]any)
	require.True(t, ok)
	heuristics, ok := baz["heuristics"].([]any)
	require.True(t, ok)
	h, ok := heuristics[0].(map[string]any)
	require.True(t, ok)
	dataVal, hasData := h["data"]
	require.True(t, hasData)
	assert.Nil(t, dataVal)
}

func TestPackage_TimestampsAreEpochSeconds(t *testing.T) {
	now := NewEpoch(time.Unix(1700000000, 123456789))
	b, err := json.Marshal(fixtureTree(now))
	require.NoError(t, err)

	var raw struct {
		LastUpdated int64 `json:"last_updated"`
	}
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, int64(1700000000), raw.LastUpdated)
}

func TestPackage_CloneIsDeep(t *testing.T) {
	now := NewEpoch(time.Now())
	original := fixtureTree(now)

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutating the clone must not leak into the original.
	*clone.Risk = 99
	clone.Heuristics[0].Data["foo"] = "mutated"
	clone.Dependencies[0].Status = StatusNew
	clone.Dependencies[0].Vulnerabilities[0][2] = 'X'

	assert.Equal(t, 60, *original.Risk)
	assert.Equal(t, "bar", original.Heuristics[0].Data["foo"])
	assert.Equal(t, StatusCompleted, original.Dependencies[0].Status)
	assert.JSONEq(t, `{"cve":"CVE-2021-0001"}`, string(original.Dependencies[0].Vulnerabilities[0]))
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusNew.Valid())
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, Status("RUNNING").Valid())
	assert.False(t, Status("").Valid())
}
