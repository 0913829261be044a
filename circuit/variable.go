package circuit

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Variable is a handle into a ConstraintSystem: a mode, an assigned field
// value, and an identifier unique within its constraint system. Variables
// are values — cheap to clone, never mutated in place — and compare equal
// iff their identifiers match.
type Variable struct {
	id    uint64
	mode  Mode
	value fr.Element

	// scopeTag is attached for debug display only (§4.4): it has no
	// bearing on equality, evaluation, or satisfaction.
	scopeTag string
}

// newVariable constructs a Variable with the given identifier, mode and
// value. It is unexported: callers allocate variables exclusively through
// a ConstraintSystem or CircuitScope so that identifiers stay unique and
// monotonic.
func newVariable(id uint64, mode Mode, value fr.Element) Variable {
	return Variable{id: id, mode: mode, value: value}
}

// ID returns the variable's identifier, unique within its constraint
// system.
func (v Variable) ID() uint64 { return v.id }

// Mode returns the variable's mode.
func (v Variable) Mode() Mode { return v.mode }

// Value returns the field value assigned to the variable.
func (v Variable) Value() fr.Element { return v.value }

// Equal reports whether two variables share the same identifier. Variables
// from different constraint systems that happen to share an id are not
// considered comparable by the caller's contract — identifiers are only
// unique within one system.
func (v Variable) Equal(other Variable) bool { return v.id == other.id }

// withScopeTag returns a copy of v tagged with the given scope path, used
// purely for String()'s debug rendering.
func (v Variable) withScopeTag(path string) Variable {
	v.scopeTag = path
	return v
}

// String renders the variable for debugging: its scope path (if tagged),
// mode, and identifier. It never affects equality or evaluation.
func (v Variable) String() string {
	if v.scopeTag != "" {
		return fmt.Sprintf("%s::%s(%d)", v.scopeTag, v.mode, v.id)
	}
	return fmt.Sprintf("%s(%d)", v.mode, v.id)
}

// ToLinearCombination lifts the variable into a one-term linear
// combination with coefficient one, the circuit-level analogue of Rust's
// `Into<LinearCombination<F>> for Variable<F>`.
func (v Variable) ToLinearCombination() LinearCombination {
	return LinearCombination{
		terms:    []term{{id: v.id, coeff: fr.One()}},
		constant: fr.Element{},
	}
}
