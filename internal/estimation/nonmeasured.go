package estimation

import (
	"go.orqa.ch/estim/internal/core/domain"
	"go.trai.ch/zerr"
)

// EvaluateNonMeasuredTasks computes expectation values for tasks that
// need no backend interaction. The expectation is the net coefficient
// of the constant term (0 if absent); correlation and estimator
// covariance are 1x1 zero matrices, since a constant has no statistical
// uncertainty.
//
// A task that still carries qubit-labeled terms together with a
// non-zero shot count signals an upstream splitting bug: the whole
// batch is scanned first and the call fails on the first offender
// before producing any result. Constant-only tasks are accepted for any
// shot count.
func EvaluateNonMeasuredTasks(tasks []domain.EstimationTask) ([]domain.ExpectationValues, error) {
	simplified := make([]domain.IsingOperator, len(tasks))
	for i, task := range tasks {
		simplified[i] = task.Operator.Simplify()
		if !simplified[i].IsConstant() && task.Shots > 0 {
			err := zerr.Wrap(domain.ErrMeasurableShots, "analytic evaluation failed")
			err = zerr.With(err, "task", i)
			err = zerr.With(err, "shots", task.Shots)
			return nil, zerr.With(err, "operator", task.Operator.String())
		}
	}

	out := make([]domain.ExpectationValues, len(tasks))
	for i := range tasks {
		out[i] = domain.ExpectationValues{
			Values:               []float64{simplified[i].Constant()},
			Correlations:         []domain.Matrix{domain.ZeroMatrix(1)},
			EstimatorCovariances: []domain.Matrix{domain.ZeroMatrix(1)},
		}
	}
	return out, nil
}
