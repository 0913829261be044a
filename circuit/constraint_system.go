package circuit

import (
	"io"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/ronanh/intcomp"

	"github.com/openzkp/aleo-circuit/internal/obs"
	"github.com/openzkp/aleo-circuit/internal/profile"
)

var log = obs.Component("circuit")

// Constraint is one enforced (A, B, C) triple asserting A*B=C, tagged with
// the dotted scope path that emitted it.
type Constraint struct {
	A, B, C    LinearCombination
	ScopeLabel string
}

// ConstraintSystem is the backing store shared by every CircuitScope
// derived from it: allocation counters, the enforced-constraint list, and
// the variable-id -> value assignment record. Allocation is append-only
// and monotonically numbered; no constraint is ever removed.
type ConstraintSystem struct {
	numConstants uint64
	numPublic    uint64
	numPrivate   uint64
	nextID       uint64

	constraints []Constraint
	assignment  map[uint64]fr.Element

	// constrained tracks which variable ids have appeared in at least one
	// constraint, mirroring the public/secret-constrained bitmaps
	// frontend/cs/r1cs/compiler.go's checkVariables builds to report
	// unconstrained inputs.
	constrained *bitset.BitSet

	// scopeConstraints indexes enforced constraints by the scope label
	// that produced them, purely for debug/analytics accessors; the
	// counters above remain global per §4.4's design rationale.
	scopeConstraints map[string][]uint32

	// scopeVariables counts variables allocated under each scope label,
	// feeding internal/profile's per-scope sample alongside
	// scopeConstraints.
	scopeVariables map[string]uint64

	debugLogging bool
}

// NewConstraintSystem allocates a fresh ConstraintSystem with its implicit
// public "one" input already allocated, so NumPublic() == 1 immediately
// (§4.3).
func NewConstraintSystem(opts ...Option) *ConstraintSystem {
	cfg := csConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	cs := &ConstraintSystem{
		assignment:       make(map[uint64]fr.Element),
		constrained:      bitset.New(0),
		scopeConstraints: make(map[string][]uint32),
		scopeVariables:   make(map[string]uint64),
		debugLogging:     cfg.debugLogging,
	}
	if cfg.capacityHint > 0 {
		cs.constraints = make([]Constraint, 0, cfg.capacityHint)
	}

	// The implicit public "one" input (§3, §4.3): allocated here so every
	// LinearCombination constant term can be expressed relative to wire 0.
	one := fr.One()
	id := cs.allocID()
	cs.numPublic++
	cs.assignment[id] = one

	return cs
}

func (cs *ConstraintSystem) allocID() uint64 {
	id := cs.nextID
	cs.nextID++
	return id
}

// recordVariable attributes one freshly allocated variable to scopeLabel,
// for internal/profile's per-scope accounting. Called by CircuitScope's
// NewConstant/NewPublic/NewPrivate wrappers, never directly by callers
// allocating through the bare ConstraintSystem (which has no scope label
// to attribute to).
func (cs *ConstraintSystem) recordVariable(scopeLabel string) {
	cs.scopeVariables[scopeLabel]++
}

// NewConstant allocates a fresh Constant-mode variable with value v.
func (cs *ConstraintSystem) NewConstant(v fr.Element) Variable {
	id := cs.allocID()
	cs.numConstants++
	cs.assignment[id] = v
	return newVariable(id, Constant, v)
}

// NewPublic allocates a fresh Public-mode variable with value v.
func (cs *ConstraintSystem) NewPublic(v fr.Element) Variable {
	id := cs.allocID()
	cs.numPublic++
	cs.assignment[id] = v
	return newVariable(id, Public, v)
}

// NewPrivate allocates a fresh Private-mode variable with value v.
func (cs *ConstraintSystem) NewPrivate(v fr.Element) Variable {
	id := cs.allocID()
	cs.numPrivate++
	cs.assignment[id] = v
	return newVariable(id, Private, v)
}

// Enforce appends the (A, B, C) constraint tagged with scopeLabel and
// increments NumConstraints. No constraint is ever removed afterward.
func (cs *ConstraintSystem) Enforce(scopeLabel string, a, b, c LinearCombination) {
	idx := len(cs.constraints)
	cs.constraints = append(cs.constraints, Constraint{A: a, B: b, C: c, ScopeLabel: scopeLabel})
	cs.scopeConstraints[scopeLabel] = append(cs.scopeConstraints[scopeLabel], uint32(idx))

	cs.markConstrained(a)
	cs.markConstrained(b)
	cs.markConstrained(c)

	if cs.debugLogging {
		log.Debug().
			Str("scope", scopeLabel).
			Int("constraint_index", idx).
			Int("a_terms", a.NumTerms()).
			Int("b_terms", b.NumTerms()).
			Int("c_terms", c.NumTerms()).
			Msg("enforce")
	}
}

func (cs *ConstraintSystem) markConstrained(lc LinearCombination) {
	for _, id := range lc.VariableIDs() {
		cs.constrained.Set(uint(id))
	}
}

// IsSatisfied returns true iff every recorded constraint's evaluation
// under the current assignment satisfies A*B=C. O(total coefficients
// across all constraints).
func (cs *ConstraintSystem) IsSatisfied() bool {
	for _, c := range cs.constraints {
		av := c.A.Evaluate(cs.assignment)
		bv := c.B.Evaluate(cs.assignment)
		cv := c.C.Evaluate(cs.assignment)

		var prod fr.Element
		prod.Mul(&av, &bv)
		if !prod.Equal(&cv) {
			return false
		}
	}
	return true
}

// NumConstants returns the number of allocated Constant-mode variables.
func (cs *ConstraintSystem) NumConstants() uint64 { return cs.numConstants }

// NumPublic returns the number of allocated Public-mode variables,
// including the implicit "one" input.
func (cs *ConstraintSystem) NumPublic() uint64 { return cs.numPublic }

// NumPrivate returns the number of allocated Private-mode variables.
func (cs *ConstraintSystem) NumPrivate() uint64 { return cs.numPrivate }

// NumConstraints returns the number of enforced constraints.
func (cs *ConstraintSystem) NumConstraints() uint64 { return uint64(len(cs.constraints)) }

// Constraints returns the full, ordered list of enforced constraints.
func (cs *ConstraintSystem) Constraints() []Constraint {
	out := make([]Constraint, len(cs.constraints))
	copy(out, cs.constraints)
	return out
}

// Assignment returns the value assigned to a variable id, and whether that
// id has been allocated.
func (cs *ConstraintSystem) Assignment(id uint64) (fr.Element, bool) {
	v, ok := cs.assignment[id]
	return v, ok
}

// UnconstrainedVariables returns the ids of every allocated variable (0
// excluded, since the implicit "one" input needs no constraint) that has
// never appeared in an enforced constraint.
func (cs *ConstraintSystem) UnconstrainedVariables() []uint64 {
	var out []uint64
	for id := uint64(1); id < cs.nextID; id++ {
		if !cs.constrained.Test(uint(id)) {
			out = append(out, id)
		}
	}
	return out
}

// ConstraintIndices returns the indices, in enforcement order, of
// constraints tagged with the given scope label.
func (cs *ConstraintSystem) ConstraintIndices(scopeLabel string) []uint32 {
	idx := cs.scopeConstraints[scopeLabel]
	out := make([]uint32, len(idx))
	copy(out, idx)
	return out
}

// CompressedConstraintIndices delta/bitpacks ConstraintIndices(scopeLabel)
// with intcomp, the same compression role it plays for gnark-crypto's own
// coefficient-index slices. Indices are enforcement-ordered so they are
// monotonically increasing, which is exactly the access pattern intcomp's
// delta coding targets.
func (cs *ConstraintSystem) CompressedConstraintIndices(scopeLabel string) []uint32 {
	return intcomp.CompressUint32(cs.ConstraintIndices(scopeLabel), nil)
}

// ScopeLabels returns every distinct scope label that has allocated a
// variable or enforced a constraint, for callers (internal/profile) that
// need to enumerate scopes from outside the package.
func (cs *ConstraintSystem) ScopeLabels() []string {
	seen := make(map[string]struct{}, len(cs.scopeVariables)+len(cs.scopeConstraints))
	for label := range cs.scopeVariables {
		seen[label] = struct{}{}
	}
	for label := range cs.scopeConstraints {
		seen[label] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for label := range seen {
		out = append(out, label)
	}
	return out
}

// ScopeVariableCount returns the number of variables allocated under the
// given scope label.
func (cs *ConstraintSystem) ScopeVariableCount(scopeLabel string) uint64 {
	return cs.scopeVariables[scopeLabel]
}

// ScopeCosts renders internal/profile.ScopeCost for every scope label seen
// so far, keyed by label — the raw material for WriteProfile.
func (cs *ConstraintSystem) ScopeCosts() map[string]profile.ScopeCost {
	labels := cs.ScopeLabels()
	out := make(map[string]profile.ScopeCost, len(labels))
	for _, label := range labels {
		out[label] = profile.ScopeCost{
			NumConstraints: int64(len(cs.scopeConstraints[label])),
			NumVariables:   int64(cs.scopeVariables[label]),
		}
	}
	return out
}

// WriteProfile serializes a pprof profile of every scope recorded so far
// (§9's flamegraph tooling note) to w.
func (cs *ConstraintSystem) WriteProfile(w io.Writer) error {
	return profile.Write(w, cs.ScopeCosts())
}
