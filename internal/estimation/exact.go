package estimation

import (
	"context"
	"fmt"

	"go.orqa.ch/estim/internal/core/domain"
	"go.orqa.ch/estim/internal/core/ports"
	"go.trai.ch/zerr"
)

// ExactExpectationValues computes expectation values analytically from
// each task's final state, bypassing sampling entirely. The backend
// must expose the Simulator capability; a sampling-only backend is a
// caller configuration error surfaced as ErrExactNotSupported. Shot
// counts are ignored on this path.
func ExactExpectationValues(ctx context.Context, backend ports.Sampler, tasks []domain.EstimationTask) ([]domain.ExpectationValues, error) {
	simulator, ok := backend.(ports.Simulator)
	if !ok {
		err := zerr.Wrap(domain.ErrExactNotSupported, "exact evaluation failed")
		return nil, zerr.With(err, "backend", fmt.Sprintf("%T", backend))
	}

	out := make([]domain.ExpectationValues, len(tasks))
	for i, task := range tasks {
		values, err := simulator.ExactExpectationValues(ctx, task.Circuit, task.Operator)
		if err != nil {
			return nil, err
		}
		out[i] = values
	}
	return out, nil
}
