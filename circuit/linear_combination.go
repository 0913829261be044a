package circuit

import (
	"sort"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// term is one (variable id, nonzero coefficient) pair inside a
// LinearCombination.
type term struct {
	id    uint64
	coeff fr.Element
}

// LinearCombination is a sparse sum of (coefficient, variable) terms plus a
// constant field offset. The zero value is the canonical zero()
// combination: empty terms, zero constant.
//
// Invariants maintained by every constructor and combinator in this file:
// terms are sorted by ascending variable id, no two terms share an id, and
// no term carries a zero coefficient.
type LinearCombination struct {
	terms    []term
	constant fr.Element
}

// ZeroLC returns the canonical additive-identity linear combination: empty
// map, zero constant.
func ZeroLC() LinearCombination { return LinearCombination{} }

// OneLC returns the canonical multiplicative-identity linear combination:
// empty map, constant one.
func OneLC() LinearCombination { return LinearCombination{constant: fr.One()} }

// FromField lifts a raw field element into a linear combination with no
// variable terms, the circuit-level analogue of Rust's
// `Into<LinearCombination<F>> for F`.
func FromField(v fr.Element) LinearCombination { return LinearCombination{constant: v} }

// LCLike is the set of Go types that can be lifted into a
// LinearCombination — variables, other linear combinations (identity
// lift), and raw field elements. It stands in for Rust's
// `Into<LinearCombination<F>>` bound on A/B/C in `enforce`.
type LCLike interface {
	Variable | LinearCombination | fr.Element
}

// ToLC lifts any LCLike value into a LinearCombination.
func ToLC[T LCLike](v T) LinearCombination {
	switch x := any(v).(type) {
	case Variable:
		return x.ToLinearCombination()
	case LinearCombination:
		return x
	case fr.Element:
		return FromField(x)
	default:
		panic("circuit: unreachable LCLike case")
	}
}

// IsZero reports whether lc is the canonical zero combination.
func (lc LinearCombination) IsZero() bool { return len(lc.terms) == 0 && lc.constant.IsZero() }

// IsOne reports whether lc is the canonical one combination.
func (lc LinearCombination) IsOne() bool {
	var one fr.Element
	one.SetOne()
	return len(lc.terms) == 0 && lc.constant.Equal(&one)
}

// Constant returns the constant offset of the linear combination.
func (lc LinearCombination) Constant() fr.Element { return lc.constant }

// NumTerms returns the number of nonzero variable terms.
func (lc LinearCombination) NumTerms() int { return len(lc.terms) }

// VariableIDs returns, in ascending order, the ids of every variable
// referenced with a nonzero coefficient.
func (lc LinearCombination) VariableIDs() []uint64 {
	ids := make([]uint64, len(lc.terms))
	for i, t := range lc.terms {
		ids[i] = t.id
	}
	return ids
}

// Add returns lc + other, canonicalized (coefficients merged, zero
// coefficients purged).
func (lc LinearCombination) Add(other LinearCombination) LinearCombination {
	merged := mergeTerms(lc.terms, other.terms)
	var c fr.Element
	c.Add(&lc.constant, &other.constant)
	return LinearCombination{terms: merged, constant: c}
}

// AddConstant returns lc + v, where v is added to the constant offset.
func (lc LinearCombination) AddConstant(v fr.Element) LinearCombination {
	var c fr.Element
	c.Add(&lc.constant, &v)
	terms := make([]term, len(lc.terms))
	copy(terms, lc.terms)
	return LinearCombination{terms: terms, constant: c}
}

// MulScalar returns lc scaled by s, canonicalized.
func (lc LinearCombination) MulScalar(s fr.Element) LinearCombination {
	terms := make([]term, 0, len(lc.terms))
	for _, t := range lc.terms {
		var coeff fr.Element
		coeff.Mul(&t.coeff, &s)
		if !coeff.IsZero() {
			terms = append(terms, term{id: t.id, coeff: coeff})
		}
	}
	var c fr.Element
	c.Mul(&lc.constant, &s)
	return LinearCombination{terms: terms, constant: c}
}

// Neg returns -lc.
func (lc LinearCombination) Neg() LinearCombination {
	var negOne fr.Element
	negOne.SetOne()
	negOne.Neg(&negOne)
	return lc.MulScalar(negOne)
}

// Evaluate computes sum(coeff_i * assignment[id_i]) + constant under the
// given assignment. Variables absent from the assignment evaluate as zero.
func (lc LinearCombination) Evaluate(assignment map[uint64]fr.Element) fr.Element {
	sum := lc.constant
	for _, t := range lc.terms {
		val := assignment[t.id]
		var prod fr.Element
		prod.Mul(&t.coeff, &val)
		sum.Add(&sum, &prod)
	}
	return sum
}

// mergeTerms merges two term slices, both assumed sorted by id with unique
// ids, summing coefficients of shared ids and dropping any that cancel to
// zero. Mirrors the sorted-merge `reduce` pass gnark's r1cs compiler runs
// over a LinearExpression before emitting it into an R1C.
func mergeTerms(a, b []term) []term {
	if !sort.SliceIsSorted(a, func(i, j int) bool { return a[i].id < a[j].id }) {
		a = sortedCopy(a)
	}
	if !sort.SliceIsSorted(b, func(i, j int) bool { return b[i].id < b[j].id }) {
		b = sortedCopy(b)
	}

	out := make([]term, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].id < b[j].id:
			out = append(out, a[i])
			i++
		case a[i].id > b[j].id:
			out = append(out, b[j])
			j++
		default:
			var sum fr.Element
			sum.Add(&a[i].coeff, &b[j].coeff)
			if !sum.IsZero() {
				out = append(out, term{id: a[i].id, coeff: sum})
			}
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

func sortedCopy(in []term) []term {
	out := make([]term, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
