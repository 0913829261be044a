package circuit

import "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

// InjectFunc lifts a primitive value of type P into a circuit value of
// type C under a given Mode. It plays the role Rust's `Inject` trait plays
// in original_source/circuit/environment/src/traits/inject.rs: Go has no
// static-dispatch trait with an associated-type constructor, so the
// factory is passed around as a plain function value instead (the same
// idiom the teacher uses for hint.Function / LeafHandler in
// frontend/compile.go).
type InjectFunc[C any, P any] func(mode Mode, value P) C

// VariableInjector returns an InjectFunc that allocates Variables through
// s — the circuit-level instance of Inject for the primitive field type.
func (s CircuitScope) VariableInjector() InjectFunc[Variable, fr.Element] {
	return func(mode Mode, value fr.Element) Variable {
		switch mode {
		case Constant:
			return s.NewConstant(value)
		case Public:
			return s.NewPublic(value)
		case Private:
			return s.NewPrivate(value)
		default:
			panic("circuit: inject called with unknown mode")
		}
	}
}

// VariableInjector returns an InjectFunc that allocates Variables through
// e's ambient scope.
func (e *Environment) VariableInjector() InjectFunc[Variable, fr.Element] {
	return e.current.VariableInjector()
}

// Constant is the `constant(value)` shorthand (§4.1): equivalent to
// new(Constant, value).
func Constant[C any, P any](new InjectFunc[C, P], value P) C {
	return new(Constant, value)
}

// InjectSlice lifts an ordered sequence of primitives into the
// corresponding ordered sequence of circuit values, mapping
// element-wise and preserving order (§4.1, the "Ordered sequence" row).
func InjectSlice[C any, P any](new InjectFunc[C, P], mode Mode, values []P) []C {
	out := make([]C, len(values))
	for i, v := range values {
		out[i] = new(mode, v)
	}
	return out
}

// Pair is one (key, value) entry of an insertion-ordered mapping.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// OrderedMap is an insertion-ordered mapping of circuit keys to circuit
// values (§4.1, the "Mapping" row). Unlike a Go map, two entries injected
// from equal primitive keys under a non-Constant mode are never
// deduplicated — see the note on mapping injection on InjectOrderedMap.
type OrderedMap[K any, V any] struct {
	pairs []Pair[K, V]
}

// Len returns the number of entries.
func (m OrderedMap[K, V]) Len() int { return len(m.pairs) }

// At returns the i-th (key, value) pair in insertion order.
func (m OrderedMap[K, V]) At(i int) Pair[K, V] { return m.pairs[i] }

// Keys returns every key, in insertion order.
func (m OrderedMap[K, V]) Keys() []K {
	out := make([]K, len(m.pairs))
	for i, p := range m.pairs {
		out[i] = p.Key
	}
	return out
}

// Values returns every value, in insertion order.
func (m OrderedMap[K, V]) Values() []V {
	out := make([]V, len(m.pairs))
	for i, p := range m.pairs {
		out[i] = p.Value
	}
	return out
}

// InjectOrderedMap lifts an insertion-ordered primitive mapping into the
// corresponding circuit mapping, injecting both key and value
// element-wise under the same mode and preserving insertion order
// (§4.1).
//
// Two primitive keys that compare equal may inject into distinct circuit
// keys whenever mode != Constant, because injection under Public/Private
// allocates a fresh Variable identifier per call — mapping injection is
// primarily meaningful for Constant mode, where determinism follows from
// the underlying primitive's own equality (§9 design notes). This
// implementation never attempts deduplication; it is a direct structural
// map, preserving order, exactly as documented.
func InjectOrderedMap[K any, V any, P0 any, P1 any](
	keyNew InjectFunc[K, P0],
	valNew InjectFunc[V, P1],
	mode Mode,
	primitive []Pair[P0, P1],
) OrderedMap[K, V] {
	pairs := make([]Pair[K, V], len(primitive))
	for i, p := range primitive {
		pairs[i] = Pair[K, V]{Key: keyNew(mode, p.Key), Value: valNew(mode, p.Value)}
	}
	return OrderedMap[K, V]{pairs: pairs}
}
