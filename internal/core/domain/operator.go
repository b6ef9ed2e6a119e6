package domain

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Term is a product of single-qubit Z observables at the given qubit
// indices, scaled by a real coefficient. An empty qubit list is the
// identity (constant) term.
type Term struct {
	Qubits      []int
	Coefficient float64
}

// NewTerm creates a Term over the given qubits. Qubit indices are
// deduplicated and stored in ascending order; Z squares to the identity,
// so a repeated index cancels out of the product.
func NewTerm(coefficient float64, qubits ...int) Term {
	return Term{Qubits: canonicalQubits(qubits), Coefficient: coefficient}
}

// ConstantTerm creates the identity term with the given coefficient.
func ConstantTerm(coefficient float64) Term {
	return Term{Coefficient: coefficient}
}

// IsConstant reports whether the term is the identity term.
func (t Term) IsConstant() bool {
	return len(t.Qubits) == 0
}

// key is the canonical identity of the term's qubit set, used to merge
// like terms.
func (t Term) key() string {
	if len(t.Qubits) == 0 {
		return ""
	}
	parts := make([]string, len(t.Qubits))
	for i, q := range t.Qubits {
		parts[i] = strconv.Itoa(q)
	}
	return strings.Join(parts, ",")
}

func (t Term) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(t.Coefficient, 'g', -1, 64))
	sb.WriteString("[")
	for i, q := range t.Qubits {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("Z")
		sb.WriteString(strconv.Itoa(q))
	}
	sb.WriteString("]")
	return sb.String()
}

func canonicalQubits(qubits []int) []int {
	if len(qubits) == 0 {
		return nil
	}
	sorted := slices.Clone(qubits)
	slices.Sort(sorted)
	// Z_q * Z_q = I: drop index pairs.
	out := make([]int, 0, len(sorted))
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if (j-i)%2 == 1 {
			out = append(out, sorted[i])
		}
		i = j
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// IsingOperator is a weighted sum of mutually commuting Z-product terms.
// All terms are diagonal in the computational basis and therefore
// simultaneously measurable from a single circuit execution.
//
// The zero value is the empty operator (no terms).
type IsingOperator struct {
	terms []Term
}

// NewIsingOperator creates an operator from the given terms. Term order
// is preserved; qubit indices within each term are canonicalized.
func NewIsingOperator(terms ...Term) IsingOperator {
	ts := make([]Term, len(terms))
	for i, t := range terms {
		ts[i] = Term{Qubits: canonicalQubits(t.Qubits), Coefficient: t.Coefficient}
	}
	return IsingOperator{terms: ts}
}

// ParseIsing parses the textual operator form, e.g.
// "2[Z0] + 3 [Z1 Z2] + 4[]" or "- 3 []". A chunk without brackets,
// such as "Z0 Z1", is read as a single term with coefficient 1.
func ParseIsing(s string) (IsingOperator, error) {
	var terms []Term
	for _, chunk := range splitSigned(s) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		term, err := parseTerm(chunk)
		if err != nil {
			return IsingOperator{}, err
		}
		terms = append(terms, term)
	}
	return IsingOperator{terms: terms}, nil
}

// MustParseIsing is ParseIsing that panics on malformed input. Intended
// for literals in tests and examples.
func MustParseIsing(s string) IsingOperator {
	op, err := ParseIsing(s)
	if err != nil {
		panic(err)
	}
	return op
}

// splitSigned splits an operator expression into signed term chunks,
// e.g. "2[Z0] - 3[Z1]" -> ["2[Z0]", "-3[Z1]"].
func splitSigned(s string) []string {
	var chunks []string
	var current strings.Builder
	for _, r := range s {
		if r == '+' || r == '-' {
			if strings.TrimSpace(current.String()) != "" {
				chunks = append(chunks, current.String())
			}
			current.Reset()
			if r == '-' {
				current.WriteRune('-')
			}
			continue
		}
		current.WriteRune(r)
	}
	if strings.TrimSpace(current.String()) != "" {
		chunks = append(chunks, current.String())
	}
	return chunks
}

func parseTerm(chunk string) (Term, error) {
	chunk = strings.TrimSpace(chunk)
	coeffText := chunk
	factorText := ""
	hasBrackets := false

	if open := strings.IndexByte(chunk, '['); open >= 0 {
		closing := strings.IndexByte(chunk, ']')
		if closing < open {
			return Term{}, fmt.Errorf("malformed term %q: unbalanced brackets", chunk)
		}
		coeffText = strings.TrimSpace(chunk[:open])
		factorText = strings.TrimSpace(chunk[open+1 : closing])
		hasBrackets = true
	} else if i := strings.IndexByte(chunk, 'Z'); i >= 0 {
		coeffText = strings.TrimSpace(chunk[:i])
		factorText = strings.TrimSpace(chunk[i:])
	}

	coeffText = strings.ReplaceAll(coeffText, " ", "")

	coefficient := 1.0
	switch coeffText {
	case "", "+":
	case "-":
		coefficient = -1.0
	default:
		coeffText = strings.TrimSuffix(strings.TrimSpace(coeffText), "*")
		c, err := strconv.ParseFloat(strings.TrimSpace(coeffText), 64)
		if err != nil {
			return Term{}, fmt.Errorf("malformed term %q: bad coefficient: %w", chunk, err)
		}
		coefficient = c
	}

	if !hasBrackets && factorText == "" {
		// A bare number is a constant term.
		return ConstantTerm(coefficient), nil
	}

	var qubits []int
	for _, f := range strings.Fields(factorText) {
		if !strings.HasPrefix(f, "Z") {
			return Term{}, fmt.Errorf("malformed term %q: unsupported factor %q (only Z is diagonal)", chunk, f)
		}
		q, err := strconv.Atoi(f[1:])
		if err != nil || q < 0 {
			return Term{}, fmt.Errorf("malformed term %q: bad qubit index in %q", chunk, f)
		}
		qubits = append(qubits, q)
	}
	return NewTerm(coefficient, qubits...), nil
}

// Terms returns a copy of the operator's terms in iteration order.
func (op IsingOperator) Terms() []Term {
	out := make([]Term, len(op.terms))
	for i, t := range op.terms {
		out[i] = Term{Qubits: slices.Clone(t.Qubits), Coefficient: t.Coefficient}
	}
	return out
}

// NumTerms returns the number of terms, including the constant term.
func (op IsingOperator) NumTerms() int {
	return len(op.terms)
}

// Simplify merges like terms in first-appearance order and drops terms
// whose coefficients cancel to exactly zero. This is the single place
// where like-term combination happens; classification and evaluation
// both rely on its output.
func (op IsingOperator) Simplify() IsingOperator {
	merged := make(map[string]int)
	var out []Term
	for _, t := range op.terms {
		k := t.key()
		if i, ok := merged[k]; ok {
			out[i].Coefficient += t.Coefficient
			continue
		}
		merged[k] = len(out)
		out = append(out, Term{Qubits: slices.Clone(t.Qubits), Coefficient: t.Coefficient})
	}
	kept := out[:0]
	for _, t := range out {
		if t.Coefficient != 0 {
			kept = append(kept, t)
		}
	}
	return IsingOperator{terms: slices.Clone(kept)}
}

// IsConstant reports whether the operator reduces to only the identity
// term (or to nothing at all) after like-term combination.
func (op IsingOperator) IsConstant() bool {
	for _, t := range op.Simplify().terms {
		if !t.IsConstant() {
			return false
		}
	}
	return true
}

// Constant returns the net coefficient of the identity term, 0 if absent.
func (op IsingOperator) Constant() float64 {
	var c float64
	for _, t := range op.terms {
		if t.IsConstant() {
			c += t.Coefficient
		}
	}
	return c
}

// MaxQubit returns the highest qubit index referenced by any term, or -1
// for a constant or empty operator.
func (op IsingOperator) MaxQubit() int {
	max := -1
	for _, t := range op.terms {
		for _, q := range t.Qubits {
			if q > max {
				max = q
			}
		}
	}
	return max
}

// Equal reports whether two operators have the same net coefficient for
// every term, regardless of term order or how terms were split up.
func (op IsingOperator) Equal(other IsingOperator) bool {
	a := op.Simplify()
	b := other.Simplify()
	if len(a.terms) != len(b.terms) {
		return false
	}
	coeffs := make(map[string]float64, len(a.terms))
	for _, t := range a.terms {
		coeffs[t.key()] = t.Coefficient
	}
	for _, t := range b.terms {
		c, ok := coeffs[t.key()]
		if !ok || math.Abs(c-t.Coefficient) != 0 {
			return false
		}
	}
	return true
}

func (op IsingOperator) String() string {
	if len(op.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(op.terms))
	for i, t := range op.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}
