// Package estimation implements expectation-value estimation of Ising
// operators against parameterized quantum circuits: shot allocation,
// symbol binding, task splitting, analytic and sampling-based
// estimators, and result reassembly.
//
// All functions are pure over domain values: inputs are never mutated
// and results are new instances.
package estimation

import (
	"go.orqa.ch/estim/internal/core/domain"
	"go.trai.ch/zerr"
)

// AllocateShotsUniformly gives every task the same shot budget. It is
// the baseline allocation policy; alternative allocators must preserve
// task order and count so downstream consumers stay oblivious.
func AllocateShotsUniformly(tasks []domain.EstimationTask, totalShots int) ([]domain.EstimationTask, error) {
	if totalShots < 0 {
		err := zerr.Wrap(domain.ErrNegativeShots, "shot allocation failed")
		return nil, zerr.With(err, "shots", totalShots)
	}
	out := make([]domain.EstimationTask, len(tasks))
	for i, task := range tasks {
		out[i] = task.WithShots(totalShots)
	}
	return out, nil
}
