package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.orqa.ch/estim/internal/core/domain"
)

func TestMeasurementsParities(t *testing.T) {
	m := domain.NewMeasurements([][]uint8{
		{0, 0},
		{0, 1},
		{1, 0},
		{1, 1},
	})

	require.Equal(t, []float64{1, 1, -1, -1}, m.Parities([]int{0}))
	require.Equal(t, []float64{1, -1, 1, -1}, m.Parities([]int{1}))
	require.Equal(t, []float64{1, -1, -1, 1}, m.Parities([]int{0, 1}))
	// Identity term: all +1.
	require.Equal(t, []float64{1, 1, 1, 1}, m.Parities(nil))
	// A qubit outside the measured register reads as 0.
	require.Equal(t, []float64{1, 1, 1, 1}, m.Parities([]int{7}))
}

func TestMeasurementsCounts(t *testing.T) {
	m := domain.NewMeasurements([][]uint8{
		{0, 0},
		{1, 1},
		{0, 0},
		{1, 0},
	})
	require.Equal(t, map[string]int{"00": 2, "11": 1, "10": 1}, m.Counts())
}

func TestMeasurementsCopiesInput(t *testing.T) {
	rows := [][]uint8{{0, 1}}
	m := domain.NewMeasurements(rows)
	rows[0][0] = 1
	require.Equal(t, uint8(0), m.Bit(0, 0))
}

func TestZeroExpectationValues(t *testing.T) {
	ev := domain.ZeroExpectationValues(3)
	require.Equal(t, []float64{0, 0, 0}, ev.Values)
	require.Len(t, ev.Correlations, 1)
	require.Len(t, ev.EstimatorCovariances, 1)
	require.Equal(t, 3, ev.Correlations[0].Dim())
	require.True(t, ev.Correlations[0].AllClose(domain.ZeroMatrix(3), 0))
	require.True(t, ev.EstimatorCovariances[0].AllClose(domain.ZeroMatrix(3), 0))
}

func TestMatrixAllClose(t *testing.T) {
	a := domain.Matrix{{1, 0}, {0, 1}}
	b := domain.Matrix{{1, 1e-9}, {0, 1}}
	require.True(t, a.AllClose(b, 1e-8))
	require.False(t, a.AllClose(b, 1e-10))
	require.False(t, a.AllClose(domain.ZeroMatrix(3), 1))
}
