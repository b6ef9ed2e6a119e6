package domain

import "strings"

// Measurements holds the raw bit outcomes of repeated circuit
// executions: one row per shot, one bit per measured qubit.
type Measurements struct {
	bits [][]uint8
}

// NewMeasurements creates a Measurements record from per-shot bit rows.
func NewMeasurements(rows [][]uint8) Measurements {
	copied := make([][]uint8, len(rows))
	for i, row := range rows {
		copied[i] = append([]uint8(nil), row...)
	}
	return Measurements{bits: copied}
}

// Len returns the number of recorded shots.
func (m Measurements) Len() int {
	return len(m.bits)
}

// Bit returns the outcome bit for a qubit in one shot. A qubit the
// backend never measured reads as 0.
func (m Measurements) Bit(shot, qubit int) uint8 {
	row := m.bits[shot]
	if qubit >= len(row) {
		return 0
	}
	return row[qubit]
}

// Parities returns the per-shot ±1 parity for a Z-product term over the
// given qubits: the product of (1 - 2*bit) across the term's qubits.
func (m Measurements) Parities(qubits []int) []float64 {
	out := make([]float64, len(m.bits))
	for shot := range m.bits {
		p := 1.0
		for _, q := range qubits {
			if m.Bit(shot, q) == 1 {
				p = -p
			}
		}
		out[shot] = p
	}
	return out
}

// Counts aggregates the shots into bitstring frequencies, with the
// lowest qubit index leftmost.
func (m Measurements) Counts() map[string]int {
	counts := make(map[string]int)
	for _, row := range m.bits {
		var sb strings.Builder
		for _, b := range row {
			if b == 0 {
				sb.WriteByte('0')
			} else {
				sb.WriteByte('1')
			}
		}
		counts[sb.String()]++
	}
	return counts
}
