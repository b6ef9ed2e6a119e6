package domain

import (
	"encoding/binary"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Param is a gate parameter: either a literal angle or a free symbol
// awaiting substitution.
type Param struct {
	symbol string
	value  float64
}

// Value creates a literal parameter.
func Value(v float64) Param {
	return Param{value: v}
}

// Symbol creates a symbolic parameter with the given name.
func Symbol(name string) Param {
	return Param{symbol: name}
}

// Symbolic reports whether the parameter is an unbound symbol.
func (p Param) Symbolic() bool {
	return p.symbol != ""
}

// Float returns the literal value. It is only meaningful when the
// parameter is not symbolic.
func (p Param) Float() float64 {
	return p.value
}

// Name returns the symbol name, or "" for a literal parameter.
func (p Param) Name() string {
	return p.symbol
}

func (p Param) String() string {
	if p.symbol != "" {
		return p.symbol
	}
	return strconv.FormatFloat(p.value, 'g', -1, 64)
}

// SymbolBinding assigns a numeric value to a named symbol.
type SymbolBinding struct {
	Symbol string
	Value  float64
}

// SymbolMap is an ordered sequence of symbol bindings. Later bindings of
// the same symbol win.
type SymbolMap []SymbolBinding

func (m SymbolMap) lookup(name string) (float64, bool) {
	var v float64
	found := false
	for _, b := range m {
		if b.Symbol == name {
			v = b.Value
			found = true
		}
	}
	return v, found
}

// Gate is one operation in a circuit: a named gate applied to specific
// qubits, with zero or more rotation parameters.
type Gate struct {
	Name   string
	Qubits []int
	Params []Param
}

// Single-qubit gate constructors.

func H(q int) Gate { return Gate{Name: "H", Qubits: []int{q}} }
func X(q int) Gate { return Gate{Name: "X", Qubits: []int{q}} }
func Y(q int) Gate { return Gate{Name: "Y", Qubits: []int{q}} }
func Z(q int) Gate { return Gate{Name: "Z", Qubits: []int{q}} }
func S(q int) Gate { return Gate{Name: "S", Qubits: []int{q}} }
func T(q int) Gate { return Gate{Name: "T", Qubits: []int{q}} }

// Rotation gate constructors.

func RX(theta Param, q int) Gate { return Gate{Name: "RX", Qubits: []int{q}, Params: []Param{theta}} }
func RY(theta Param, q int) Gate { return Gate{Name: "RY", Qubits: []int{q}, Params: []Param{theta}} }
func RZ(theta Param, q int) Gate { return Gate{Name: "RZ", Qubits: []int{q}, Params: []Param{theta}} }

// Two-qubit gate constructors.

func CNOT(control, target int) Gate {
	return Gate{Name: "CNOT", Qubits: []int{control, target}}
}

func CZ(control, target int) Gate {
	return Gate{Name: "CZ", Qubits: []int{control, target}}
}

// Circuit is an ordered sequence of gates on a register of qubits.
// Circuits are immutable values: Append and Bind return new instances.
type Circuit struct {
	gates []Gate
}

// NewCircuit creates a circuit from the given gates.
func NewCircuit(gates ...Gate) Circuit {
	return Circuit{gates: cloneGates(gates)}
}

func cloneGates(gates []Gate) []Gate {
	out := make([]Gate, len(gates))
	for i, g := range gates {
		out[i] = Gate{
			Name:   g.Name,
			Qubits: slices.Clone(g.Qubits),
			Params: slices.Clone(g.Params),
		}
	}
	return out
}

// Gates returns a copy of the circuit's gate sequence.
func (c Circuit) Gates() []Gate {
	return cloneGates(c.gates)
}

// Append returns a new circuit with the given gates added at the end.
func (c Circuit) Append(gates ...Gate) Circuit {
	combined := make([]Gate, 0, len(c.gates)+len(gates))
	combined = append(combined, c.gates...)
	combined = append(combined, gates...)
	return Circuit{gates: cloneGates(combined)}
}

// NumQubits returns the register width implied by the gates: the highest
// touched qubit index plus one. An empty circuit has zero qubits.
func (c Circuit) NumQubits() int {
	max := -1
	for _, g := range c.gates {
		for _, q := range g.Qubits {
			if q > max {
				max = q
			}
		}
	}
	return max + 1
}

// FreeSymbols returns the names of all unbound symbolic parameters,
// sorted and deduplicated.
func (c Circuit) FreeSymbols() []string {
	seen := make(map[string]bool)
	var names []string
	for _, g := range c.gates {
		for _, p := range g.Params {
			if p.Symbolic() && !seen[p.Name()] {
				seen[p.Name()] = true
				names = append(names, p.Name())
			}
		}
	}
	slices.Sort(names)
	return names
}

// Bind substitutes symbol values into the circuit and returns the
// resulting circuit. Symbols absent from the map stay free; an empty map
// yields a structurally equal copy.
func (c Circuit) Bind(bindings SymbolMap) Circuit {
	gates := cloneGates(c.gates)
	for gi := range gates {
		for pi, p := range gates[gi].Params {
			if !p.Symbolic() {
				continue
			}
			if v, ok := bindings.lookup(p.Name()); ok {
				gates[gi].Params[pi] = Value(v)
			}
		}
	}
	return Circuit{gates: gates}
}

// Equal reports structural equality: same gates, same order, same qubits
// and identical parameters.
func (c Circuit) Equal(other Circuit) bool {
	if len(c.gates) != len(other.gates) {
		return false
	}
	for i, g := range c.gates {
		o := other.gates[i]
		if g.Name != o.Name || !slices.Equal(g.Qubits, o.Qubits) || !slices.Equal(g.Params, o.Params) {
			return false
		}
	}
	return true
}

// Fingerprint returns a stable 64-bit hash of the circuit structure,
// suitable as a cache key for results of deterministic computations.
func (c Circuit) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, g := range c.gates {
		_, _ = d.WriteString(g.Name)
		_, _ = d.Write([]byte{0})
		for _, q := range g.Qubits {
			binary.LittleEndian.PutUint64(buf[:], uint64(q))
			_, _ = d.Write(buf[:])
		}
		for _, p := range g.Params {
			if p.Symbolic() {
				_, _ = d.WriteString("$" + p.Name())
			} else {
				binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p.Float()))
				_, _ = d.Write(buf[:])
			}
			_, _ = d.Write([]byte{0})
		}
		_, _ = d.Write([]byte{0xff})
	}
	return d.Sum64()
}

func (c Circuit) String() string {
	if len(c.gates) == 0 {
		return "Circuit()"
	}
	parts := make([]string, len(c.gates))
	for i, g := range c.gates {
		var sb strings.Builder
		sb.WriteString(g.Name)
		if len(g.Params) > 0 {
			sb.WriteString("(")
			for j, p := range g.Params {
				if j > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(p.String())
			}
			sb.WriteString(")")
		}
		sb.WriteString("[")
		for j, q := range g.Qubits {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(strconv.Itoa(q))
		}
		sb.WriteString("]")
		parts[i] = sb.String()
	}
	return "Circuit(" + strings.Join(parts, " ") + ")"
}
