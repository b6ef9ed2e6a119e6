package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.orqa.ch/estim/internal/adapters/telemetry"
)

func TestOTelTracerRecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := telemetry.NewProvider(recorder)
	defer func() { require.NoError(t, provider.Shutdown(context.Background())) }()

	tracer := telemetry.NewOTelTracer("estim-test")
	_, span := tracer.Start(context.Background(), "estimation.run")
	span.SetAttribute("estim.tasks", 3)
	span.SetAttribute("estim.exact", true)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "estimation.run", ended[0].Name())

	attrs := ended[0].Attributes()
	found := 0
	for _, kv := range attrs {
		switch string(kv.Key) {
		case "estim.tasks":
			require.EqualValues(t, 3, kv.Value.AsInt64())
			found++
		case "estim.exact":
			require.True(t, kv.Value.AsBool())
			found++
		}
	}
	require.Equal(t, 2, found)
}

func TestOTelSpanRecordsErrorStatus(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := telemetry.NewProvider(recorder)
	defer func() { require.NoError(t, provider.Shutdown(context.Background())) }()

	tracer := telemetry.NewOTelTracer("estim-test")
	_, span := tracer.Start(context.Background(), "estimation.evaluate")
	span.RecordError(errors.New("backend unavailable"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, codes.Error, ended[0].Status().Code)
	require.Equal(t, "backend unavailable", ended[0].Status().Description)
}

func TestNoopTracerIsSafe(t *testing.T) {
	tracer := telemetry.Noop()
	ctx, span := tracer.Start(context.Background(), "anything")
	require.NotNil(t, ctx)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
