package pipeline_test

import (
	"context"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.orqa.ch/estim/internal/adapters/logger"
	"go.orqa.ch/estim/internal/adapters/simulator"
	"go.orqa.ch/estim/internal/adapters/telemetry"
	"go.orqa.ch/estim/internal/core/domain"
	"go.orqa.ch/estim/internal/core/ports/mocks"
	"go.orqa.ch/estim/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func quietLogger() *logger.Logger {
	log := logger.New().(*logger.Logger)
	log.SetOutput(io.Discard)
	return log
}

func TestPipelineRunMixedTasks(t *testing.T) {
	backend := simulator.New(simulator.WithSeed(11))
	p := pipeline.New(backend, telemetry.Noop(), quietLogger())

	tasks := []domain.EstimationTask{
		domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(domain.X(0)), 0),
		domain.NewEstimationTask(domain.MustParseIsing("- 3 []"), domain.NewCircuit(domain.X(0)), 0),
		domain.NewEstimationTask(domain.MustParseIsing("[Z0] + [Z1]"), domain.NewCircuit(domain.X(1)), 0),
	}

	results, err := p.Run(context.Background(), tasks, nil, pipeline.Options{TotalShots: 10, HasTotalShots: true})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Results come back in the caller's task order, constants included.
	require.Equal(t, []float64{-1}, results[0].Values)
	require.Equal(t, []float64{-3}, results[1].Values)
	require.Equal(t, []float64{1, -1}, results[2].Values)
}

func TestPipelineRunBindsSymbols(t *testing.T) {
	backend := simulator.New(simulator.WithSeed(11))
	p := pipeline.New(backend, telemetry.Noop(), quietLogger())

	tasks := []domain.EstimationTask{
		domain.NewEstimationTask(
			domain.MustParseIsing("Z0"),
			domain.NewCircuit(domain.RY(domain.Symbol("theta"), 0)), 0),
	}
	maps := []domain.SymbolMap{{{Symbol: "theta", Value: math.Pi}}}

	results, err := p.Run(context.Background(), tasks, maps, pipeline.Options{TotalShots: 20, HasTotalShots: true})
	require.NoError(t, err)
	require.InDelta(t, -1, results[0].Values[0], 1e-12)
}

func TestPipelineRunExact(t *testing.T) {
	backend := simulator.New()
	p := pipeline.New(backend, telemetry.Noop(), quietLogger())

	tasks := []domain.EstimationTask{
		domain.NewEstimationTask(
			domain.MustParseIsing("-2.0 [Z0]"),
			domain.NewCircuit(domain.RY(domain.Value(math.Pi/4), 0)), 0),
	}

	results, err := p.Run(context.Background(), tasks, nil, pipeline.Options{Exact: true})
	require.NoError(t, err)
	require.InDelta(t, -2*math.Cos(math.Pi/4), results[0].Values[0], 1e-9)
	require.True(t, results[0].EstimatorCovariances[0].AllClose(domain.ZeroMatrix(1), 0))
}

func TestPipelineRunExactRejectsSamplingBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockSampler(ctrl)
	p := pipeline.New(backend, telemetry.Noop(), quietLogger())

	tasks := []domain.EstimationTask{
		domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(domain.X(0)), 0),
	}

	_, err := p.Run(context.Background(), tasks, nil, pipeline.Options{Exact: true})
	require.ErrorIs(t, err, domain.ErrExactNotSupported)
}

func TestPipelineRunRejectsNegativeShots(t *testing.T) {
	p := pipeline.New(simulator.New(), telemetry.Noop(), quietLogger())

	_, err := p.Run(context.Background(), []domain.EstimationTask{}, nil, pipeline.Options{TotalShots: -5, HasTotalShots: true})
	require.ErrorIs(t, err, domain.ErrNegativeShots)
}

func TestPipelineRunChunkedParallelism(t *testing.T) {
	backend := simulator.New(simulator.WithSeed(4))
	p := pipeline.New(backend, telemetry.Noop(), quietLogger())

	tasks := []domain.EstimationTask{
		domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(domain.X(0)), 0),
		domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(), 0),
		domain.NewEstimationTask(domain.MustParseIsing("Z1"), domain.NewCircuit(domain.X(1)), 0),
		domain.NewEstimationTask(domain.MustParseIsing("Z0 Z1"), domain.NewCircuit(domain.X(0), domain.X(1)), 0),
	}

	opts := pipeline.Options{TotalShots: 8, HasTotalShots: true, ChunkSize: 1, Parallelism: 2}
	results, err := p.Run(context.Background(), tasks, nil, opts)
	require.NoError(t, err)
	require.Len(t, results, 4)

	require.Equal(t, []float64{-1}, results[0].Values)
	require.Equal(t, []float64{1}, results[1].Values)
	require.Equal(t, []float64{-1}, results[2].Values)
	require.Equal(t, []float64{1}, results[3].Values)
}

func TestPipelineRunHonorsPerTaskShots(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockSampler(ctrl)
	// Without a budget the tasks' own shot counts reach the backend.
	backend.EXPECT().
		RunSetAndMeasure(gomock.Any(), gomock.Len(2), []int{6, 4}).
		Return([]domain.Measurements{
			domain.NewMeasurements([][]uint8{{1}, {1}, {1}, {1}, {1}, {1}}),
			domain.NewMeasurements([][]uint8{{0}, {0}, {0}, {0}}),
		}, nil)

	p := pipeline.New(backend, telemetry.Noop(), quietLogger())
	tasks := []domain.EstimationTask{
		domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(domain.X(0)), 6),
		domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(), 4),
	}

	results, err := p.Run(context.Background(), tasks, nil, pipeline.Options{})
	require.NoError(t, err)
	require.Equal(t, []float64{-1}, results[0].Values)
	require.Equal(t, []float64{1}, results[1].Values)
}

func TestPipelineRunZeroShotTaskSkipsBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockSampler(ctrl)

	p := pipeline.New(backend, telemetry.Noop(), quietLogger())
	tasks := []domain.EstimationTask{
		domain.NewEstimationTask(domain.MustParseIsing("2[Z0] + 4[]"), domain.NewCircuit(domain.X(0)), 0),
	}

	// With zero shots there is nothing to sample: the task resolves to
	// its constant part without any backend interaction.
	results, err := p.Run(context.Background(), tasks, nil, pipeline.Options{TotalShots: 0, HasTotalShots: true})
	require.NoError(t, err)
	require.Equal(t, []float64{4}, results[0].Values)
	require.True(t, results[0].EstimatorCovariances[0].AllClose(domain.ZeroMatrix(1), 0))
}

func TestPipelineRunEmptyTaskList(t *testing.T) {
	p := pipeline.New(simulator.New(), telemetry.Noop(), quietLogger())

	results, err := p.Run(context.Background(), []domain.EstimationTask{}, nil, pipeline.Options{TotalShots: 100, HasTotalShots: true})
	require.NoError(t, err)
	require.Empty(t, results)
}
