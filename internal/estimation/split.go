package estimation

import "go.orqa.ch/estim/internal/core/domain"

// SplitTasksToMeasure partitions tasks into those that need backend
// sampling and those that can be evaluated analytically: tasks whose
// operators reduce to only the constant term after like-term
// combination, and tasks requesting zero shots, which have nothing to
// sample and contribute only their constant part. A task mixing
// constant and qubit-labeled terms with a non-zero shot count stays in
// the to-measure set unchanged: the constant rides along the sampling
// path.
//
// Both output lists preserve the relative order of the input, and the
// returned index lists record each task's original position so results
// evaluated separately can be re-interleaved into caller order.
func SplitTasksToMeasure(tasks []domain.EstimationTask) (
	toMeasure []domain.EstimationTask,
	nonMeasured []domain.EstimationTask,
	indicesToMeasure []int,
	indicesNonMeasured []int,
) {
	toMeasure = make([]domain.EstimationTask, 0, len(tasks))
	nonMeasured = make([]domain.EstimationTask, 0)
	indicesToMeasure = make([]int, 0, len(tasks))
	indicesNonMeasured = make([]int, 0)

	for i, task := range tasks {
		if task.Operator.IsConstant() || task.Shots == 0 {
			nonMeasured = append(nonMeasured, task)
			indicesNonMeasured = append(indicesNonMeasured, i)
		} else {
			toMeasure = append(toMeasure, task)
			indicesToMeasure = append(indicesToMeasure, i)
		}
	}
	return toMeasure, nonMeasured, indicesToMeasure, indicesNonMeasured
}
