package domain

import "math"

// Matrix is a small dense square matrix used for per-frame correlation
// and estimator-covariance data.
type Matrix [][]float64

// ZeroMatrix creates an n-by-n matrix of zeros.
func ZeroMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// Dim returns the matrix dimension.
func (m Matrix) Dim() int {
	return len(m)
}

// AllClose reports whether two matrices agree entry-wise within tol.
func (m Matrix) AllClose(other Matrix, tol float64) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if math.Abs(m[i][j]-other[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// ExpectationValues is the result record for one estimation frame.
//
// Values holds one entry per operator term, in term-iteration order.
// Correlations holds the raw second moments <O_j O_k> between terms;
// EstimatorCovariances holds the covariance of the sample-mean
// estimators, i.e. the correlation-derived covariance divided by the
// effective sample size. Both matrices are symmetric, and every entry
// involving the constant term is zero: a deterministic additive shift
// has no variance and no covariance with anything.
type ExpectationValues struct {
	Values               []float64
	Correlations         []Matrix
	EstimatorCovariances []Matrix
}

// ZeroExpectationValues creates an all-zero result record sized for an
// operator with the given number of terms.
func ZeroExpectationValues(numTerms int) ExpectationValues {
	return ExpectationValues{
		Values:               make([]float64, numTerms),
		Correlations:         []Matrix{ZeroMatrix(numTerms)},
		EstimatorCovariances: []Matrix{ZeroMatrix(numTerms)},
	}
}
