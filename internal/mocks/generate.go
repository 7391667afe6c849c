// Package mocks provides mock implementations for testing the depscout services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the service-layer ports. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	registry := mocks.NewMockJobRegistry(ctrl)
//	registry.EXPECT().Insert(gomock.Any()).Return(nil)
package mocks

// Generate mock for JobRegistry interface from internal/service package.
// This creates MockJobRegistry with methods for all JobRegistry interface methods:
// Insert, GetAndAdvance, SweepTerminal, Len
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=job_registry_mock.go github.com/depscout/depscout/internal/service JobRegistry

// Generate mock for ResultProducer interface from internal/analysis package.
// This creates MockResultProducer with methods for all ResultProducer interface methods:
// Produce
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=result_producer_mock.go github.com/depscout/depscout/internal/analysis ResultProducer
