package circuit

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Environment holds the ambient CircuitScope a caller is currently building
// in. Rust's original has exactly one of these per OS thread, held in
// thread-local storage; Go's goroutines have no equivalent ergonomic TLS,
// so an Environment here is an explicit handle (§9 design notes: "An
// implementation language without ergonomic thread-local storage should
// provide an explicit Environment handle passed into every gadget
// builder"). The package-level functions below operate on a shared default
// instance for callers that want the same single-ambient-scope ergonomics
// the spec describes, under the same single-writer-per-instance contract:
// construct a dedicated Environment per goroutine if you build circuits
// concurrently (environment_test.go builds one Environment per goroutine).
type Environment struct {
	current CircuitScope
}

// NewEnvironment constructs an Environment with a fresh
// ConstraintSystem and a root scope named "ConstraintSystem::new",
// matching the teacher's Circuit::cs() initialization.
func NewEnvironment(opts ...Option) *Environment {
	cs := NewConstraintSystem(opts...)
	return &Environment{current: NewCircuitScope(cs, "ConstraintSystem::new", nil)}
}

// Current returns the ambient scope.
func (e *Environment) Current() CircuitScope { return e.current }

// NewVariable allocates a variable of the given mode in the ambient scope.
func (e *Environment) NewVariable(mode Mode, value fr.Element) Variable {
	switch mode {
	case Constant:
		return e.current.NewConstant(value)
	case Public:
		return e.current.NewPublic(value)
	case Private:
		return e.current.NewPrivate(value)
	default:
		e.Halt("circuit: new_variable called with unknown mode")
		panic("unreachable")
	}
}

// Zero returns the canonical zero linear combination.
func (e *Environment) Zero() LinearCombination { return ZeroLC() }

// One returns the canonical one linear combination.
func (e *Environment) One() LinearCombination { return OneLC() }

// IsSatisfied reports whether every constraint in the ambient scope's
// system currently holds.
func (e *Environment) IsSatisfied() bool { return e.current.IsSatisfied() }

// Scope replaces the ambient scope with a newly derived child and returns
// it. This is the lower-level primitive (§4.5): it leaks the new scope as
// the ambient and leaves restoration to the caller. Prefer Scoped.
func (e *Environment) Scope(name string) CircuitScope {
	child := e.current.Scope(name)
	e.current = child
	return child
}

// Scoped snapshots the ambient scope, installs a fresh child named name as
// ambient, runs logic(child), then unconditionally restores the prior
// ambient scope — including if logic panics. This is the primary public
// interface; Scope is the lower-level primitive.
func (e *Environment) Scoped(name string, logic func(child CircuitScope)) {
	prior := e.current
	defer func() { e.current = prior }()

	child := e.current.Scope(name)
	e.current = child
	logic(child)
}

// NumConstants, NumPublic, NumPrivate and NumConstraints forward to the
// ambient scope.
func (e *Environment) NumConstants() uint64   { return e.current.NumConstants() }
func (e *Environment) NumPublic() uint64      { return e.current.NumPublic() }
func (e *Environment) NumPrivate() uint64     { return e.current.NumPrivate() }
func (e *Environment) NumConstraints() uint64 { return e.current.NumConstraints() }

// ResetCircuit replaces the ambient scope with a fresh root scope over a
// brand-new ConstraintSystem. Testing only (§4.5): afterward,
// (NumConstants, NumPublic, NumPrivate, NumConstraints) == (0, 1, 0, 0).
func (e *Environment) ResetCircuit(opts ...Option) {
	cs := NewConstraintSystem(opts...)
	e.current = NewCircuitScope(cs, "ConstraintSystem::new", nil)
}

// WriteProfile serializes a pprof profile of every scope recorded in the
// ambient system so far.
func (e *Environment) WriteProfile(w io.Writer) error {
	return e.current.WriteProfile(w)
}

// Halt logs message at error level tagged with the ambient scope's path,
// then panics. It never returns; it is reserved for invariant violations
// inside circuit construction that indicate a programming bug, not for
// recoverable validation failures (§7 CircuitHalt).
func (e *Environment) Halt(message string) {
	log.Error().Str("scope", e.current.Path()).Msg(message)
	panic(message)
}

// EnforceEnv invokes thunk to produce (A, B, C) and forwards the
// constraint to the ambient scope of e. It is a free function, not a
// method, because Go methods cannot introduce their own type parameters.
func EnforceEnv[A, B, C LCLike](e *Environment, thunk func() (A, B, C)) {
	Enforce(e.current, thunk)
}

// defaultEnvironment is the process-wide ambient Environment convenience
// functions below operate on, mirroring the spec's single-threaded-ambient
// convention for callers that do not fork concurrent circuit construction.
var defaultEnvironment = NewEnvironment()

// NewVariableDefault, ZeroDefault, OneDefault, IsSatisfiedDefault, ScopeDefault,
// ScopedDefault, NumConstantsDefault, NumPublicDefault, NumPrivateDefault,
// NumConstraintsDefault, ResetCircuitDefault and HaltDefault are the
// package-level convenience wrappers around defaultEnvironment.
func NewVariableDefault(mode Mode, value fr.Element) Variable { return defaultEnvironment.NewVariable(mode, value) }
func ZeroDefault() LinearCombination                          { return defaultEnvironment.Zero() }
func OneDefault() LinearCombination                           { return defaultEnvironment.One() }
func IsSatisfiedDefault() bool                                { return defaultEnvironment.IsSatisfied() }
func ScopeDefault(name string) CircuitScope                   { return defaultEnvironment.Scope(name) }
func ScopedDefault(name string, logic func(CircuitScope))     { defaultEnvironment.Scoped(name, logic) }
func NumConstantsDefault() uint64                             { return defaultEnvironment.NumConstants() }
func NumPublicDefault() uint64                                { return defaultEnvironment.NumPublic() }
func NumPrivateDefault() uint64                                { return defaultEnvironment.NumPrivate() }
func NumConstraintsDefault() uint64                            { return defaultEnvironment.NumConstraints() }
func ResetCircuitDefault()                                     { defaultEnvironment.ResetCircuit() }
func HaltDefault(message string)                               { defaultEnvironment.Halt(message) }
