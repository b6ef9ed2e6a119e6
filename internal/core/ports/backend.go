// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.orqa.ch/estim/internal/core/domain"
)

// Sampler is the minimal quantum backend capability: execute a circuit
// and return per-shot measurement outcomes. Both remote hardware and
// local simulators satisfy it.
//
//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Sampler interface {
	// RunAndMeasure executes the circuit for the requested number of
	// shots and returns one bit-outcome row per shot.
	RunAndMeasure(ctx context.Context, circuit domain.Circuit, shots int) (domain.Measurements, error)

	// RunSetAndMeasure executes a batch of circuits, one shot count per
	// circuit, and returns the outcomes in circuit order. Backends that
	// support batched submission implement it natively; others loop.
	RunSetAndMeasure(ctx context.Context, circuits []domain.Circuit, shots []int) ([]domain.Measurements, error)
}

// Simulator is the extended capability of backends that hold the full
// final state and can compute exact per-term expectations without
// sampling. Passing a Sampler-only backend where a Simulator is needed
// is a caller configuration error, surfaced as ErrExactNotSupported at
// call time.
type Simulator interface {
	Sampler

	// ExactExpectationValues computes per-term expectation values and
	// correlations of the operator against the circuit's final state.
	// Estimator covariances are zero: nothing is sampled.
	ExactExpectationValues(ctx context.Context, circuit domain.Circuit, operator domain.IsingOperator) (domain.ExpectationValues, error)
}
