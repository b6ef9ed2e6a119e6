package estimation_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.orqa.ch/estim/internal/adapters/simulator"
	"go.orqa.ch/estim/internal/core/domain"
	"go.orqa.ch/estim/internal/core/ports/mocks"
	"go.orqa.ch/estim/internal/estimation"
	"go.uber.org/mock/gomock"
)

func requireMatrixClose(t *testing.T, want domain.Matrix, got domain.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Dim(), got.Dim())
	require.True(t, got.AllClose(want, tol), "want %v, got %v", want, got)
}

// Eigenstate tasks have deterministic shot outcomes, so their averaged
// values match the analytic ones exactly, sampling variance included.
func TestEstimateByAveragingEigenstates(t *testing.T) {
	cases := []struct {
		name     string
		task     domain.EstimationTask
		values   []float64
		corr     domain.Matrix
		cov      domain.Matrix
	}{
		{
			name: "flipped qubit",
			task: domain.NewEstimationTask(
				domain.MustParseIsing("Z0"),
				domain.NewCircuit(domain.X(0)), 10),
			values: []float64{-1},
			corr:   domain.Matrix{{1}},
			cov:    domain.ZeroMatrix(1),
		},
		{
			name: "constant operator never samples variance",
			task: domain.NewEstimationTask(
				domain.MustParseIsing("2.0[]"),
				domain.NewCircuit(domain.RY(domain.Value(math.Pi/4), 0)), 30),
			values: []float64{2},
			corr:   domain.ZeroMatrix(1),
			cov:    domain.ZeroMatrix(1),
		},
		{
			name: "two flipped qubits correlate",
			task: domain.NewEstimationTask(
				domain.MustParseIsing("[Z0] + [Z1]"),
				domain.NewCircuit(domain.X(0), domain.X(1)), 10),
			values: []float64{-1, -1},
			corr:   domain.Matrix{{1, 1}, {1, 1}},
			cov:    domain.ZeroMatrix(2),
		},
		{
			name: "one flipped qubit anti-correlates",
			task: domain.NewEstimationTask(
				domain.MustParseIsing("[Z0] + [Z1]"),
				domain.NewCircuit(domain.X(1)), 10),
			values: []float64{1, -1},
			corr:   domain.Matrix{{1, -1}, {-1, 1}},
			cov:    domain.ZeroMatrix(2),
		},
	}

	backend := simulator.New(simulator.WithSeed(42))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := estimation.EstimateByAveraging(context.Background(), backend, []domain.EstimationTask{tc.task})
			require.NoError(t, err)
			require.Len(t, results, 1)

			ev := results[0]
			require.Len(t, ev.Values, len(tc.values))
			for i, want := range tc.values {
				require.InDelta(t, want, ev.Values[i], 1e-12)
			}
			requireMatrixClose(t, tc.corr, ev.Correlations[0], 1e-12)
			requireMatrixClose(t, tc.cov, ev.EstimatorCovariances[0], 1e-12)
		})
	}
}

func TestEstimateByAveragingNonEigenstates(t *testing.T) {
	const shots = 1000
	backend := simulator.New(simulator.WithSeed(7))

	cases := []struct {
		name  string
		task  domain.EstimationTask
		value float64
		corr  float64
		cov   float64
	}{
		{
			name: "superposition averages to zero",
			task: domain.NewEstimationTask(
				domain.MustParseIsing("Z0"),
				domain.NewCircuit(domain.H(0)), shots),
			value: 0,
			corr:  1,
			cov:   1.0 / shots,
		},
		{
			name: "scaled partial rotation",
			task: domain.NewEstimationTask(
				domain.MustParseIsing("-2.0 [Z0]"),
				domain.NewCircuit(domain.RY(domain.Value(math.Pi/4), 0)), shots),
			value: -2 * math.Cos(math.Pi/4),
			corr:  4,
			cov:   (4 - 2*math.Cos(math.Pi/4)*2*math.Cos(math.Pi/4)) / shots,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := estimation.EstimateByAveraging(context.Background(), backend, []domain.EstimationTask{tc.task})
			require.NoError(t, err)

			ev := results[0]
			require.InDelta(t, tc.value, ev.Values[0], 0.1)
			// Squared parities are identically one, so the diagonal raw
			// second moment is exact even at finite shots.
			require.InDelta(t, tc.corr, ev.Correlations[0][0][0], 1e-12)
			require.InDelta(t, tc.cov, ev.EstimatorCovariances[0][0][0], 0.001)
		})
	}
}

// Fixed shot tables pin down the covariance estimator at low sample
// counts, where the formulas are easiest to check by hand.
func TestEstimateByAveragingLowShotCovariances(t *testing.T) {
	operator := domain.MustParseIsing("[Z0] + [Z1]")
	circuit := domain.NewCircuit(domain.X(0), domain.X(1))

	repeat := func(rows [][]uint8, times int) domain.Measurements {
		all := make([][]uint8, 0, len(rows)*times)
		for i := 0; i < times; i++ {
			all = append(all, rows...)
		}
		return domain.NewMeasurements(all)
	}

	cases := []struct {
		name         string
		measurements domain.Measurements
		corr         domain.Matrix
		cov          domain.Matrix
	}{
		{
			name:         "second qubit varies",
			measurements: repeat([][]uint8{{0, 1}, {0, 0}}, 1),
			corr:         domain.Matrix{{1, 0}, {0, 1}},
			cov:          domain.Matrix{{0, 0}, {0, 0.5}},
		},
		{
			name:         "first qubit varies",
			measurements: repeat([][]uint8{{1, 0}, {0, 0}}, 1),
			corr:         domain.Matrix{{1, 0}, {0, 1}},
			cov:          domain.Matrix{{0.5, 0}, {0, 0}},
		},
		{
			name:         "perfectly anti-correlated qubits",
			measurements: repeat([][]uint8{{1, 0}, {0, 1}}, 1),
			corr:         domain.Matrix{{1, -1}, {-1, 1}},
			cov:          domain.Matrix{{0.5, -0.5}, {-0.5, 0.5}},
		},
		{
			name:         "perfectly correlated qubits at twenty shots",
			measurements: repeat([][]uint8{{1, 1}, {0, 0}}, 10),
			corr:         domain.Matrix{{1, 1}, {1, 1}},
			cov:          domain.Matrix{{0.05, 0.05}, {0.05, 0.05}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := mocks.NewMockSampler(ctrl)
			backend.EXPECT().
				RunSetAndMeasure(gomock.Any(), gomock.Any(), []int{tc.measurements.Len()}).
				Return([]domain.Measurements{tc.measurements}, nil)

			task := domain.NewEstimationTask(operator, circuit, tc.measurements.Len())
			results, err := estimation.EstimateByAveraging(context.Background(), backend, []domain.EstimationTask{task})
			require.NoError(t, err)

			requireMatrixClose(t, tc.corr, results[0].Correlations[0], 1e-12)
			requireMatrixClose(t, tc.cov, results[0].EstimatorCovariances[0], 1e-12)
		})
	}
}

func TestEstimateByAveragingBatchesMixedTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockSampler(ctrl)

	tasks := []domain.EstimationTask{
		domain.NewEstimationTask(domain.MustParseIsing("3.5[]"), domain.NewCircuit(), 10),
		domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(domain.X(0)), 4),
		domain.NewEstimationTask(domain.MustParseIsing("Z1"), domain.NewCircuit(domain.H(0)), 0),
		domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(), 2),
	}

	// One batched submission covering only the sampled tasks, in order.
	backend.EXPECT().
		RunSetAndMeasure(gomock.Any(), gomock.Len(2), []int{4, 2}).
		Return([]domain.Measurements{
			domain.NewMeasurements([][]uint8{{1}, {1}, {1}, {1}}),
			domain.NewMeasurements([][]uint8{{0}, {0}}),
		}, nil)

	results, err := estimation.EstimateByAveraging(context.Background(), backend, tasks)
	require.NoError(t, err)
	require.Len(t, results, 4)

	require.Equal(t, []float64{3.5}, results[0].Values)
	require.Equal(t, []float64{-1}, results[1].Values)
	require.Equal(t, []float64{0}, results[2].Values)
	require.Equal(t, []float64{1}, results[3].Values)
}

func TestEstimateByAveragingZeroShots(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockSampler(ctrl)
	// No backend calls for an all-zero-shots batch.

	tasks := []domain.EstimationTask{
		domain.NewEstimationTask(domain.MustParseIsing("2[Z0] + 3 [Z1 Z2]"), domain.NewCircuit(domain.X(0)), 0),
	}
	results, err := estimation.EstimateByAveraging(context.Background(), backend, tasks)
	require.NoError(t, err)

	require.Equal(t, []float64{0, 0}, results[0].Values)
	requireMatrixClose(t, domain.ZeroMatrix(2), results[0].Correlations[0], 0)
	requireMatrixClose(t, domain.ZeroMatrix(2), results[0].EstimatorCovariances[0], 0)
}

func TestEstimateByAveragingEmptyMeasurementBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockSampler(ctrl)
	// A backend may return fewer outcomes than requested, down to none.
	backend.EXPECT().
		RunSetAndMeasure(gomock.Any(), gomock.Any(), []int{50}).
		Return([]domain.Measurements{domain.NewMeasurements(nil)}, nil)

	tasks := []domain.EstimationTask{
		domain.NewEstimationTask(domain.MustParseIsing("2[Z0] + 3 [Z1 Z2]"), domain.NewCircuit(domain.H(0)), 50),
	}
	results, err := estimation.EstimateByAveraging(context.Background(), backend, tasks)
	require.NoError(t, err)

	// No outcomes means no statistics: the record degrades to the
	// zero-shot one instead of dividing by zero.
	require.Equal(t, []float64{0, 0}, results[0].Values)
	requireMatrixClose(t, domain.ZeroMatrix(2), results[0].Correlations[0], 0)
	requireMatrixClose(t, domain.ZeroMatrix(2), results[0].EstimatorCovariances[0], 0)
}

func TestEstimateByAveragingPropagatesBackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockSampler(ctrl)
	backendErr := errors.New("queue unavailable")
	backend.EXPECT().
		RunSetAndMeasure(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, backendErr)

	tasks := []domain.EstimationTask{
		domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(domain.H(0)), 100),
	}
	_, err := estimation.EstimateByAveraging(context.Background(), backend, tasks)
	require.ErrorIs(t, err, backendErr)
}

func TestExactExpectationValues(t *testing.T) {
	backend := simulator.New()
	tasks := []domain.EstimationTask{
		domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(domain.X(0)), 0),
		domain.NewEstimationTask(domain.MustParseIsing("2.0[]"), domain.NewCircuit(domain.RY(domain.Value(math.Pi/4), 0)), 0),
		domain.NewEstimationTask(domain.MustParseIsing("[Z0] + [Z1]"), domain.NewCircuit(domain.X(1)), 0),
		domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(domain.H(0)), 0),
		domain.NewEstimationTask(domain.MustParseIsing("-2.0 [Z0]"), domain.NewCircuit(domain.RY(domain.Value(math.Pi/4), 0)), 0),
	}

	results, err := estimation.ExactExpectationValues(context.Background(), backend, tasks)
	require.NoError(t, err)
	require.Len(t, results, len(tasks))

	wantValues := [][]float64{
		{-1},
		{2},
		{1, -1},
		{0},
		{-2 * math.Cos(math.Pi / 4)},
	}
	for i, want := range wantValues {
		require.Len(t, results[i].Values, len(want))
		for j, v := range want {
			require.InDelta(t, v, results[i].Values[j], 1e-9)
		}
		dim := len(want)
		requireMatrixClose(t, domain.ZeroMatrix(dim), results[i].EstimatorCovariances[0], 0)
	}

	// Exact correlations on the anti-correlated frame.
	requireMatrixClose(t, domain.Matrix{{1, -1}, {-1, 1}}, results[2].Correlations[0], 1e-9)
}

func TestExactExpectationValuesRejectsSamplingBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockSampler(ctrl)

	tasks := []domain.EstimationTask{
		domain.NewEstimationTask(domain.MustParseIsing("Z0"), domain.NewCircuit(domain.X(0)), 0),
	}
	_, err := estimation.ExactExpectationValues(context.Background(), backend, tasks)
	require.ErrorIs(t, err, domain.ErrExactNotSupported)
}
