// Package telemetry adapts OpenTelemetry tracing to the ports.Tracer
// abstraction used by the estimation pipeline.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Provider owns the SDK tracer provider for one process.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider configures a tracer provider with the given span
// processors and installs it globally. Without processors the spans are
// still created, carrying context through the pipeline, but never
// exported.
func NewProvider(processors ...sdktrace.SpanProcessor) *Provider {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}
}

// Shutdown flushes and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
