package app_test

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.orqa.ch/estim/internal/adapters/logger"
	"go.orqa.ch/estim/internal/adapters/simulator"
	"go.orqa.ch/estim/internal/app"
	"go.orqa.ch/estim/internal/core/domain"
	"go.orqa.ch/estim/internal/core/ports"
	"go.orqa.ch/estim/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger() ports.Logger {
	log := logger.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAppRunRendersResultsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockJobLoader(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)

	job := &ports.JobFile{
		Tasks: []domain.EstimationTask{
			domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(domain.X(0)), 0),
			domain.NewEstimationTask(domain.MustParseIsing("- 3 []"), domain.NewCircuit(), 0),
		},
		SymbolMaps:    []domain.SymbolMap{{}, {}},
		TotalShots:    10,
		HasTotalShots: true,
		Seed:          1,
		HasSeed:       true,
	}
	loader.EXPECT().Load("job.yaml").Return(job, nil)

	var rendered [][]float64
	gomock.InOrder(
		renderer.EXPECT().RenderPlan(gomock.Len(2)),
		renderer.EXPECT().RenderResult(0, gomock.Any(), gomock.Any()).
			Do(func(_ int, _ domain.EstimationTask, v domain.ExpectationValues) {
				rendered = append(rendered, v.Values)
			}),
		renderer.EXPECT().RenderResult(1, gomock.Any(), gomock.Any()).
			Do(func(_ int, _ domain.EstimationTask, v domain.ExpectationValues) {
				rendered = append(rendered, v.Values)
			}),
		renderer.EXPECT().RenderSummary(2),
	)

	a := app.New(loader, quietLogger()).WithRenderer(renderer)
	err := a.Run(context.Background(), []string{"job.yaml"}, app.RunOptions{Shots: -1})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-1}, {-3}}, rendered)
}

func TestAppRunShotOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockJobLoader(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)

	job := &ports.JobFile{
		Tasks: []domain.EstimationTask{
			domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(domain.H(0)), 0),
		},
		SymbolMaps:    []domain.SymbolMap{{}},
		TotalShots:    1000,
		HasTotalShots: true,
	}
	loader.EXPECT().Load("job.yaml").Return(job, nil)

	// Forcing zero shots leaves nothing to sample: the task resolves to
	// its constant part, which this operator lacks.
	var got []float64
	renderer.EXPECT().RenderPlan(gomock.Any())
	renderer.EXPECT().RenderResult(0, gomock.Any(), gomock.Any()).
		Do(func(_ int, _ domain.EstimationTask, v domain.ExpectationValues) {
			got = v.Values
		})
	renderer.EXPECT().RenderSummary(1)

	a := app.New(loader, quietLogger()).WithRenderer(renderer)
	err := a.Run(context.Background(), []string{"job.yaml"}, app.RunOptions{Shots: 0})
	require.NoError(t, err)
	require.Equal(t, []float64{0}, got)
}

func TestAppRunExact(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockJobLoader(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)

	job := &ports.JobFile{
		Tasks: []domain.EstimationTask{
			domain.NewEstimationTask(
				domain.MustParseIsing("-2.0 [Z0]"),
				domain.NewCircuit(domain.RY(domain.Value(math.Pi/4), 0)), 0),
		},
		SymbolMaps: []domain.SymbolMap{{}},
	}
	loader.EXPECT().Load("job.yaml").Return(job, nil)

	var got []float64
	renderer.EXPECT().RenderPlan(gomock.Any())
	renderer.EXPECT().RenderResult(0, gomock.Any(), gomock.Any()).
		Do(func(_ int, _ domain.EstimationTask, v domain.ExpectationValues) {
			got = v.Values
		})
	renderer.EXPECT().RenderSummary(1)

	a := app.New(loader, quietLogger()).
		WithRenderer(renderer).
		WithBackend(simulator.New())
	err := a.Run(context.Background(), []string{"job.yaml"}, app.RunOptions{Shots: -1, Exact: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.InDelta(t, -2*math.Cos(math.Pi/4), got[0], 1e-9)
}

func TestAppRunNoJobPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockJobLoader(ctrl)

	a := app.New(loader, quietLogger())
	err := a.Run(context.Background(), nil, app.RunOptions{Shots: -1})
	require.ErrorIs(t, err, domain.ErrNoJobsSpecified)
}

func TestAppRunPropagatesLoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockJobLoader(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)
	loader.EXPECT().Load("broken.yaml").Return(nil, errors.New("unreadable"))

	a := app.New(loader, quietLogger()).WithRenderer(renderer)
	err := a.Run(context.Background(), []string{"broken.yaml"}, app.RunOptions{Shots: -1})
	require.ErrorContains(t, err, "unreadable")
}
