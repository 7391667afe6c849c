package analysis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/depscout/depscout/internal/domain/model"
)

// SyntheticEngineOptions groups constructor options for SyntheticEngine.
type SyntheticEngineOptions struct {
	// SeedRisk is the risk score assigned to every synthesized node (0-100).
	SeedRisk int
	// SynthesizeDeps controls whether child dependencies are fabricated under
	// each submitted package to exercise tree nesting.
	SynthesizeDeps bool
	// Now is the timestamp source; defaults to time.Now.
	Now func() time.Time
}

// SyntheticEngine is a deterministic ResultProducer stand-in. It emits one
// top-level node per submitted descriptor, each carrying a scored heuristic
// and, when enabled, a pair of fabricated child dependencies.
type SyntheticEngine struct {
	seedRisk       int
	synthesizeDeps bool
	now            func() time.Time
}

var _ ResultProducer = (*SyntheticEngine)(nil)

// NewSyntheticEngine creates a SyntheticEngine.
func NewSyntheticEngine(opts SyntheticEngineOptions) *SyntheticEngine {
	nowFn := opts.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &SyntheticEngine{
		seedRisk:       opts.SeedRisk,
		synthesizeDeps: opts.SynthesizeDeps,
		now:            nowFn,
	}
}

// Produce synthesizes the result tree for a submission. It never fails; the
// error return exists for real engine implementations.
func (e *SyntheticEngine) Produce(_ context.Context, descriptors []model.PackageDescriptor) ([]model.Package, error) {
	now := model.NewEpoch(e.now())

	nodes := make([]model.Package, 0, len(descriptors))
	for _, d := range descriptors {
		node := model.Package{
			Name:        d.Name,
			Version:     d.Version,
			Type:        d.Type,
			Status:      model.StatusNew,
			Risk:        e.risk(),
			LastUpdated: now,
			Heuristics: []model.Heuristic{
				{Score: 3.14, Data: map[string]any{"signal": "maintainer-churn"}},
			},
			Vulnerabilities: []json.RawMessage{},
		}
		if e.synthesizeDeps {
			node.Dependencies = e.childDeps(d, now)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// childDeps fabricates two resolved children under a submitted package: one
// already analyzed, one freshly discovered with a data-less heuristic. The
// shapes cover the field combinations a real engine produces.
func (e *SyntheticEngine) childDeps(parent model.PackageDescriptor, now model.Epoch) []model.Package {
	return []model.Package{
		{
			Name:            parent.Name + "-core",
			Version:         "2.3.4",
			Type:            parent.Type,
			Status:          model.StatusCompleted,
			Risk:            e.risk(),
			LastUpdated:     now,
			Heuristics:      []model.Heuristic{},
			Vulnerabilities: []json.RawMessage{},
		},
		{
			Name:            parent.Name + "-utils",
			Version:         "9.8.7",
			Type:            parent.Type,
			Status:          model.StatusNew,
			Risk:            e.risk(),
			LastUpdated:     now,
			Heuristics:      []model.Heuristic{{Score: 42, Data: nil}},
			Vulnerabilities: []json.RawMessage{},
		},
	}
}

func (e *SyntheticEngine) risk() *int {
	r := e.seedRisk
	return &r
}
