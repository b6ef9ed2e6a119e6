package estimation

import (
	"context"

	"go.orqa.ch/estim/internal/core/domain"
	"go.orqa.ch/estim/internal/core/ports"
)

// EstimateByAveraging estimates expectation values by finite-sample
// averaging: each task's circuit is executed on the backend for the
// requested number of shots and per-term statistics are derived from
// the measured parities. One result is returned per task, in input
// order.
//
// Tasks whose operators are constant-only after like-term combination
// are evaluated analytically without touching the backend; tasks with
// measurable terms but zero requested shots yield all-zero results.
// All remaining circuits are submitted in a single batch. A backend
// failure propagates unmodified: no retries, no shot reallocation.
func EstimateByAveraging(ctx context.Context, backend ports.Sampler, tasks []domain.EstimationTask) ([]domain.ExpectationValues, error) {
	results := make([]domain.ExpectationValues, len(tasks))

	var pending []int
	circuits := make([]domain.Circuit, 0, len(tasks))
	shots := make([]int, 0, len(tasks))

	for i, task := range tasks {
		simplified := task.Operator.Simplify()
		switch {
		case simplified.IsConstant():
			results[i] = domain.ExpectationValues{
				Values:               []float64{simplified.Constant()},
				Correlations:         []domain.Matrix{domain.ZeroMatrix(1)},
				EstimatorCovariances: []domain.Matrix{domain.ZeroMatrix(1)},
			}
		case task.Shots == 0:
			results[i] = domain.ZeroExpectationValues(simplified.NumTerms())
		default:
			pending = append(pending, i)
			circuits = append(circuits, task.Circuit)
			shots = append(shots, task.Shots)
		}
	}

	if len(pending) > 0 {
		measurements, err := backend.RunSetAndMeasure(ctx, circuits, shots)
		if err != nil {
			return nil, err
		}
		for j, i := range pending {
			results[i] = expectationFromMeasurements(measurements[j], tasks[i].Operator)
		}
	}
	return results, nil
}

// expectationFromMeasurements derives per-term statistics for one frame
// from raw shot outcomes.
//
// For each qubit-labeled term j with coefficient c_j and per-shot
// parity sequence p_j:
//
//	value_j    = c_j * mean(p_j)
//	corr[j,k]  = c_j * c_k * mean(p_j * p_k)     (raw second moment)
//	cov[j,k]   = (corr[j,k] - value_j*value_k) / n
//
// where n is the number of measurements the backend actually returned.
// This is the population estimator divided by sample count; no Bessel
// correction. The constant term contributes its coefficient to the
// value vector and zeros to both matrices: a deterministic shift has no
// variance and no covariance with any random variable.
func expectationFromMeasurements(m domain.Measurements, operator domain.IsingOperator) domain.ExpectationValues {
	terms := operator.Simplify().Terms()
	n := m.Len()
	if n == 0 {
		// The backend returned no outcomes at all; there is nothing to
		// average, so report the same record as a zero-shot task.
		return domain.ZeroExpectationValues(len(terms))
	}

	values := make([]float64, len(terms))
	parities := make([][]float64, len(terms))
	for j, t := range terms {
		if t.IsConstant() {
			values[j] = t.Coefficient
			continue
		}
		p := m.Parities(t.Qubits)
		parities[j] = p
		values[j] = t.Coefficient * mean(p)
	}

	correlations := domain.ZeroMatrix(len(terms))
	covariances := domain.ZeroMatrix(len(terms))
	for j := range terms {
		if parities[j] == nil {
			continue
		}
		for k := j; k < len(terms); k++ {
			if parities[k] == nil {
				continue
			}
			var second float64
			for s := 0; s < n; s++ {
				second += parities[j][s] * parities[k][s]
			}
			second = second / float64(n) * terms[j].Coefficient * terms[k].Coefficient

			correlations[j][k] = second
			correlations[k][j] = second

			cov := (second - values[j]*values[k]) / float64(n)
			covariances[j][k] = cov
			covariances[k][j] = cov
		}
	}

	return domain.ExpectationValues{
		Values:               values,
		Correlations:         []domain.Matrix{correlations},
		EstimatorCovariances: []domain.Matrix{covariances},
	}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
