package ports

import "context"

// Span represents one traced unit of work.
type Span interface {
	// End completes the span.
	End()

	// RecordError attaches an error to the span.
	RecordError(err error)

	// SetAttribute attaches a key/value attribute to the span.
	SetAttribute(key string, value any)
}

// Tracer abstracts distributed tracing so the pipeline does not depend
// on a concrete telemetry SDK.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins a span with the given name and returns the derived
	// context carrying it.
	Start(ctx context.Context, name string) (context.Context, Span)
}
