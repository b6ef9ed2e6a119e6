package estimation

import (
	"go.orqa.ch/estim/internal/core/domain"
	"go.trai.ch/zerr"
)

// MergeEstimationResults re-interleaves separately evaluated result
// lists into the caller's original task order: each result lands at the
// original position recorded for it by SplitTasksToMeasure. The two
// index lists must partition the full range exactly once each.
func MergeEstimationResults(
	measured []domain.ExpectationValues,
	nonMeasured []domain.ExpectationValues,
	indicesMeasured []int,
	indicesNonMeasured []int,
) ([]domain.ExpectationValues, error) {
	if len(measured) != len(indicesMeasured) || len(nonMeasured) != len(indicesNonMeasured) {
		err := zerr.Wrap(domain.ErrIndexPartition, "result merge failed")
		err = zerr.With(err, "measured", len(measured))
		err = zerr.With(err, "measured_indices", len(indicesMeasured))
		err = zerr.With(err, "non_measured", len(nonMeasured))
		return nil, zerr.With(err, "non_measured_indices", len(indicesNonMeasured))
	}

	total := len(indicesMeasured) + len(indicesNonMeasured)
	out := make([]domain.ExpectationValues, total)
	placed := make([]bool, total)

	place := func(results []domain.ExpectationValues, indices []int) error {
		for i, idx := range indices {
			if idx < 0 || idx >= total {
				return zerr.With(zerr.Wrap(domain.ErrIndexPartition, "result merge failed"), "index", idx)
			}
			if placed[idx] {
				return zerr.With(zerr.Wrap(domain.ErrIndexPartition, "result merge failed"), "duplicate_index", idx)
			}
			placed[idx] = true
			out[idx] = results[i]
		}
		return nil
	}

	if err := place(measured, indicesMeasured); err != nil {
		return nil, err
	}
	if err := place(nonMeasured, indicesNonMeasured); err != nil {
		return nil, err
	}
	return out, nil
}
