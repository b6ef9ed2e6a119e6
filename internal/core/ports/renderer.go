package ports

import "go.orqa.ch/estim/internal/core/domain"

// Renderer is the abstraction for presenting estimation results. It
// decouples the application layer from presentation so the same result
// stream can drive plain CI logs or machine-readable output.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderPlan announces the tasks about to be estimated.
	RenderPlan(tasks []domain.EstimationTask)

	// RenderResult presents the expectation values of one task, in the
	// caller's original task order.
	RenderResult(index int, task domain.EstimationTask, values domain.ExpectationValues)

	// RenderSummary closes the report after all tasks have rendered.
	RenderSummary(total int)
}
