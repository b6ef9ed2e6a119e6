package telemetry

import (
	"context"

	"go.orqa.ch/estim/internal/core/ports"
)

// Noop returns a tracer that records nothing. Useful in tests and in
// code paths that have not been handed a real tracer yet.
func Noop() ports.Tracer {
	return noopTracer{}
}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
