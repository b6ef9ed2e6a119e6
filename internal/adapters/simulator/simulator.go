// Package simulator implements a local statevector backend. It
// satisfies both backend capabilities: sampling measurement outcomes
// from the final-state distribution and computing exact per-term
// expectation values without sampling.
package simulator

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"

	"go.orqa.ch/estim/internal/core/domain"
	"go.orqa.ch/estim/internal/core/ports"
)

// Simulator holds the sampling RNG and a memo of exact results. Exact
// expectation values are deterministic per (circuit, operator) pair, so
// repeated pipeline runs over the same frame hit the cache.
type Simulator struct {
	mu         sync.Mutex
	rng        *rand.Rand
	exactMemo  map[exactKey]domain.ExpectationValues
	maxMemoLen int
}

type exactKey struct {
	circuit  uint64
	operator string
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed makes sampling deterministic for reproducible runs.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// New creates a statevector simulator.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		exactMemo:  make(map[exactKey]domain.ExpectationValues),
		maxMemoLen: 1024,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.Simulator = (*Simulator)(nil)

// RunAndMeasure executes the circuit and samples the requested number
// of shots from the final-state probability distribution.
func (s *Simulator) RunAndMeasure(ctx context.Context, circuit domain.Circuit, shots int) (domain.Measurements, error) {
	if err := ctx.Err(); err != nil {
		return domain.Measurements{}, err
	}

	state, err := run(circuit, circuit.NumQubits())
	if err != nil {
		return domain.Measurements{}, err
	}

	numQubits := circuit.NumQubits()
	probs := state.probabilities()
	cumulative := make([]float64, len(probs))
	var acc float64
	for i, p := range probs {
		acc += p
		cumulative[i] = acc
	}

	rows := make([][]uint8, shots)
	s.mu.Lock()
	for i := range rows {
		r := s.rng.Float64() * acc
		z := sort.SearchFloat64s(cumulative, r)
		if z >= len(probs) {
			z = len(probs) - 1
		}
		row := make([]uint8, numQubits)
		for q := 0; q < numQubits; q++ {
			row[q] = uint8((z >> q) & 1)
		}
		rows[i] = row
	}
	s.mu.Unlock()

	return domain.NewMeasurements(rows), nil
}

// RunSetAndMeasure executes a batch of circuits sequentially. The
// statevector backend has no native batch submission; the method exists
// so callers can treat local and remote backends uniformly.
func (s *Simulator) RunSetAndMeasure(ctx context.Context, circuits []domain.Circuit, shots []int) ([]domain.Measurements, error) {
	out := make([]domain.Measurements, len(circuits))
	for i, circuit := range circuits {
		m, err := s.RunAndMeasure(ctx, circuit, shots[i])
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

// ExactExpectationValues computes per-term expectations and raw
// correlations of the operator against the circuit's final state.
// Estimator covariances are zero: nothing is sampled on this path.
func (s *Simulator) ExactExpectationValues(ctx context.Context, circuit domain.Circuit, operator domain.IsingOperator) (domain.ExpectationValues, error) {
	if err := ctx.Err(); err != nil {
		return domain.ExpectationValues{}, err
	}

	key := exactKey{circuit: circuit.Fingerprint(), operator: operator.String()}
	s.mu.Lock()
	if cached, ok := s.exactMemo[key]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	// The register must cover every qubit the operator references, even
	// ones the circuit never touches.
	numQubits := circuit.NumQubits()
	if mq := operator.MaxQubit(); mq+1 > numQubits {
		numQubits = mq + 1
	}
	state, err := run(circuit, numQubits)
	if err != nil {
		return domain.ExpectationValues{}, err
	}
	probs := state.probabilities()

	terms := operator.Simplify().Terms()
	values := make([]float64, len(terms))
	correlations := domain.ZeroMatrix(len(terms))
	covariances := domain.ZeroMatrix(len(terms))

	masks := make([]uint64, len(terms))
	constant := make([]bool, len(terms))
	for j, t := range terms {
		if t.IsConstant() {
			constant[j] = true
			values[j] = t.Coefficient
			continue
		}
		for _, q := range t.Qubits {
			masks[j] |= 1 << uint(q)
		}
		values[j] = t.Coefficient * exactParity(probs, masks[j])
	}

	for j := range terms {
		if constant[j] {
			continue
		}
		for k := j; k < len(terms); k++ {
			if constant[k] {
				continue
			}
			// Z products multiply into the parity of the XOR of the
			// two qubit sets.
			second := terms[j].Coefficient * terms[k].Coefficient * exactParity(probs, masks[j]^masks[k])
			correlations[j][k] = second
			correlations[k][j] = second
		}
	}

	result := domain.ExpectationValues{
		Values:               values,
		Correlations:         []domain.Matrix{correlations},
		EstimatorCovariances: []domain.Matrix{covariances},
	}

	s.mu.Lock()
	if len(s.exactMemo) < s.maxMemoLen {
		s.exactMemo[key] = result
	}
	s.mu.Unlock()
	return result, nil
}

// exactParity returns sum_z P(z) * (-1)^popcount(z & mask).
func exactParity(probs []float64, mask uint64) float64 {
	var e float64
	for z, p := range probs {
		if parityBit(uint64(z)&mask) {
			e -= p
		} else {
			e += p
		}
	}
	return e
}

func parityBit(x uint64) bool {
	count := 0
	for ; x != 0; x &= x - 1 {
		count++
	}
	return count%2 == 1
}
