package simulator

import (
	"math"
	"math/cmplx"
	"strings"

	"go.orqa.ch/estim/internal/core/domain"
	"go.trai.ch/zerr"
)

// state is a dense statevector over numQubits qubits, with qubit 0 as
// the least significant bit of the basis-state index.
type state struct {
	amps      []complex128
	numQubits int
}

func newState(numQubits int) *state {
	amps := make([]complex128, 1<<uint(numQubits))
	amps[0] = 1
	return &state{amps: amps, numQubits: numQubits}
}

// run executes the circuit on a fresh |0...0> register of the given
// width and returns the final state. Every symbolic parameter must be
// bound before execution.
func run(circuit domain.Circuit, numQubits int) (*state, error) {
	if free := circuit.FreeSymbols(); len(free) > 0 {
		err := zerr.Wrap(domain.ErrUnboundSymbols, "circuit execution failed")
		return nil, zerr.With(err, "symbols", strings.Join(free, ","))
	}
	if cq := circuit.NumQubits(); cq > numQubits {
		numQubits = cq
	}

	st := newState(numQubits)
	for _, gate := range circuit.Gates() {
		if err := st.apply(gate); err != nil {
			return nil, err
		}
	}
	return st, nil
}

var invSqrt2 = complex(1/math.Sqrt2, 0)

func (st *state) apply(gate domain.Gate) error {
	switch gate.Name {
	case "X":
		st.applySingle(gate.Qubits[0], [4]complex128{0, 1, 1, 0})
	case "Y":
		st.applySingle(gate.Qubits[0], [4]complex128{0, complex(0, -1), complex(0, 1), 0})
	case "Z":
		st.applySingle(gate.Qubits[0], [4]complex128{1, 0, 0, -1})
	case "H":
		st.applySingle(gate.Qubits[0], [4]complex128{invSqrt2, invSqrt2, invSqrt2, -invSqrt2})
	case "S":
		st.applySingle(gate.Qubits[0], [4]complex128{1, 0, 0, complex(0, 1)})
	case "T":
		st.applySingle(gate.Qubits[0], [4]complex128{1, 0, 0, cmplx.Exp(complex(0, math.Pi/4))})
	case "RX":
		half := gate.Params[0].Float() / 2
		c, s := complex(math.Cos(half), 0), complex(0, -math.Sin(half))
		st.applySingle(gate.Qubits[0], [4]complex128{c, s, s, c})
	case "RY":
		half := gate.Params[0].Float() / 2
		c, s := complex(math.Cos(half), 0), complex(math.Sin(half), 0)
		st.applySingle(gate.Qubits[0], [4]complex128{c, -s, s, c})
	case "RZ":
		half := gate.Params[0].Float() / 2
		st.applySingle(gate.Qubits[0], [4]complex128{cmplx.Exp(complex(0, -half)), 0, 0, cmplx.Exp(complex(0, half))})
	case "CNOT":
		st.applyCNOT(gate.Qubits[0], gate.Qubits[1])
	case "CZ":
		st.applyCZ(gate.Qubits[0], gate.Qubits[1])
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownGate, "circuit execution failed"), "gate", gate.Name)
	}
	return nil
}

// applySingle applies a 2x2 unitary m = [m00 m01; m10 m11] to one qubit.
func (st *state) applySingle(qubit int, m [4]complex128) {
	bit := 1 << uint(qubit)
	for z := range st.amps {
		if z&bit != 0 {
			continue
		}
		a0 := st.amps[z]
		a1 := st.amps[z|bit]
		st.amps[z] = m[0]*a0 + m[1]*a1
		st.amps[z|bit] = m[2]*a0 + m[3]*a1
	}
}

func (st *state) applyCNOT(control, target int) {
	cbit := 1 << uint(control)
	tbit := 1 << uint(target)
	for z := range st.amps {
		if z&cbit != 0 && z&tbit == 0 {
			st.amps[z], st.amps[z|tbit] = st.amps[z|tbit], st.amps[z]
		}
	}
}

func (st *state) applyCZ(control, target int) {
	cbit := 1 << uint(control)
	tbit := 1 << uint(target)
	for z := range st.amps {
		if z&cbit != 0 && z&tbit != 0 {
			st.amps[z] = -st.amps[z]
		}
	}
}

func (st *state) probabilities() []float64 {
	probs := make([]float64, len(st.amps))
	for z, a := range st.amps {
		probs[z] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}
