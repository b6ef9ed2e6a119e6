package estimation

import (
	"go.orqa.ch/estim/internal/core/domain"
	"go.trai.ch/zerr"
)

// EvaluateEstimationCircuits substitutes symbol values into each task's
// circuit, positionally: symbolMaps[i] is applied to tasks[i]. An empty
// map yields a structurally equal new circuit; a partial map leaves the
// remaining symbols free. Operators and shot counts carry through
// unchanged.
func EvaluateEstimationCircuits(tasks []domain.EstimationTask, symbolMaps []domain.SymbolMap) ([]domain.EstimationTask, error) {
	if len(symbolMaps) != len(tasks) {
		err := zerr.Wrap(domain.ErrSymbolMapCount, "circuit binding failed")
		err = zerr.With(err, "tasks", len(tasks))
		return nil, zerr.With(err, "symbol_maps", len(symbolMaps))
	}
	out := make([]domain.EstimationTask, len(tasks))
	for i, task := range tasks {
		out[i] = task.WithCircuit(task.Circuit.Bind(symbolMaps[i]))
	}
	return out, nil
}
