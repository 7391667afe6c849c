// Package analysis defines the boundary to the analysis engine that resolves
// submitted package descriptors into an annotated dependency tree.
//
// The real engine is an external collaborator; this package ships a
// deterministic synthetic implementation used until one is wired in.
package analysis

import (
	"context"

	"github.com/depscout/depscout/internal/domain/model"
)

// ResultProducer resolves a flat list of submitted descriptors into the
// top-level package nodes of an analysis result tree.
type ResultProducer interface {
	Produce(ctx context.Context, descriptors []model.PackageDescriptor) ([]model.Package, error)
}
