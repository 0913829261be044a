package circuit

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/openzkp/aleo-circuit/internal/trace"
)

// CircuitScope is a hierarchical path into a ConstraintSystem: a shared
// reference to the backing store, a dotted name path ("root/layer1/gadget"),
// and a non-owning parent back-reference kept only for lexical lineage
// bookkeeping. Cloning a CircuitScope (it is a plain value — Go copies it
// by assignment) aliases the same underlying ConstraintSystem; the name
// path is copied along with it.
type CircuitScope struct {
	cs     *ConstraintSystem
	path   string
	parent *CircuitScope
}

// NewCircuitScope constructs a scope rooted at name over system, with an
// optional parent kept only for lineage bookkeeping (never dereferenced for
// ownership).
func NewCircuitScope(system *ConstraintSystem, name string, parent *CircuitScope) CircuitScope {
	return CircuitScope{cs: system, path: name, parent: parent}
}

// Path returns the scope's full dotted name path.
func (s CircuitScope) Path() string { return s.path }

// Parent returns the scope's lexical parent, if any.
func (s CircuitScope) Parent() (CircuitScope, bool) {
	if s.parent == nil {
		return CircuitScope{}, false
	}
	return *s.parent, true
}

// System returns the underlying ConstraintSystem every alias of this scope
// shares.
func (s CircuitScope) System() *ConstraintSystem { return s.cs }

// Scope returns a child scope whose path is self.path + "/" + subName and
// whose system reference is shared with self.
func (s CircuitScope) Scope(subName string) CircuitScope {
	parent := s
	return CircuitScope{cs: s.cs, path: s.path + "/" + subName, parent: &parent}
}

// NewConstant allocates a Constant-mode variable through the underlying
// system, tagged with this scope's path for debug display.
func (s CircuitScope) NewConstant(value fr.Element) Variable {
	s.cs.recordVariable(s.path)
	return s.cs.NewConstant(value).withScopeTag(s.path)
}

// NewPublic allocates a Public-mode variable through the underlying
// system, tagged with this scope's path for debug display.
func (s CircuitScope) NewPublic(value fr.Element) Variable {
	s.cs.recordVariable(s.path)
	return s.cs.NewPublic(value).withScopeTag(s.path)
}

// NewPrivate allocates a Private-mode variable through the underlying
// system, tagged with this scope's path for debug display.
func (s CircuitScope) NewPrivate(value fr.Element) Variable {
	s.cs.recordVariable(s.path)
	return s.cs.NewPrivate(value).withScopeTag(s.path)
}

// Enforce invokes thunk to produce (A, B, C), each lifted into a
// LinearCombination via ToLC, and forwards the resulting constraint to the
// underlying system tagged with this scope's path.
func Enforce[A, B, C LCLike](s CircuitScope, thunk func() (A, B, C)) {
	a, b, c := thunk()
	s.cs.Enforce(s.path, ToLC(a), ToLC(b), ToLC(c))
}

// NumConstants, NumPublic, NumPrivate and NumConstraints delegate to the
// underlying system: counters are global to the constraint system, not
// per-scope, because they measure total proof size (§4.4).
func (s CircuitScope) NumConstants() uint64   { return s.cs.NumConstants() }
func (s CircuitScope) NumPublic() uint64      { return s.cs.NumPublic() }
func (s CircuitScope) NumPrivate() uint64     { return s.cs.NumPrivate() }
func (s CircuitScope) NumConstraints() uint64 { return s.cs.NumConstraints() }

// IsSatisfied delegates to the underlying system.
func (s CircuitScope) IsSatisfied() bool { return s.cs.IsSatisfied() }

// Fingerprint returns a short, stable debug fingerprint of the scope's
// path (blake2b-based — see internal/trace), useful for tagging debug
// output from deeply nested scopes without printing the whole path.
func (s CircuitScope) Fingerprint() string { return trace.Fingerprint(s.path) }

// DumpCompressed renders a compact, LZSS-compressed debug trace of every
// constraint enforced under this scope's path (see internal/trace.Dump).
func (s CircuitScope) DumpCompressed() ([]byte, error) {
	indices := s.cs.ConstraintIndices(s.path)
	all := s.cs.Constraints()
	records := make([]trace.ConstraintRecord, len(indices))
	for i, idx := range indices {
		c := all[idx]
		records[i] = trace.ConstraintRecord{ATerms: c.A.NumTerms(), BTerms: c.B.NumTerms(), CTerms: c.C.NumTerms()}
	}
	return trace.Dump(s.path, indices, records)
}

// WriteProfile serializes a pprof profile of every scope recorded on the
// underlying system so far, not just this scope's subtree — the system is
// shared state, and a profile is only useful read whole.
func (s CircuitScope) WriteProfile(w io.Writer) error {
	return s.cs.WriteProfile(w)
}
