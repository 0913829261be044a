package circuit

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestLinearCombinationAddCommutes checks invariant-style that lc.Add is
// commutative over arbitrary small integer-valued field elements, the same
// universally-quantified style §8's invariants are stated in.
func TestLinearCombinationAddCommutes(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("a.Add(b) == b.Add(a)", prop.ForAll(
		func(x, y int64) bool {
			cs := NewConstraintSystem()
			a := cs.NewPublic(feltFromInt(x)).ToLinearCombination()
			b := cs.NewPrivate(feltFromInt(y)).ToLinearCombination()

			left := a.Add(b)
			right := b.Add(a)

			rightConstant := right.Constant()
			return left.Constant().Equal(&rightConstant) && left.NumTerms() == right.NumTerms()
		},
		gen.Int64Range(-1000, 1000),
		gen.Int64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}

// TestIsSatisfiedMatchesProductInvariant is invariant 9 stated as a
// property: for a randomly generated (a, b) pair, enforcing a*b=c is always
// satisfied when c is assigned the actual product.
func TestIsSatisfiedMatchesProductInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("enforce(a,b,a*b) is always satisfied", prop.ForAll(
		func(x, y int64) bool {
			cs := NewConstraintSystem()
			a := cs.NewPublic(feltFromInt(x))
			b := cs.NewPrivate(feltFromInt(y))

			av, bv := a.Value(), b.Value()
			var prod fr.Element
			prod.Mul(&av, &bv)
			c := cs.NewPrivate(prod)

			cs.Enforce("root", a.ToLinearCombination(), b.ToLinearCombination(), c.ToLinearCombination())
			return cs.IsSatisfied()
		},
		gen.Int64Range(-1000, 1000),
		gen.Int64Range(-1000, 1000),
	))

	properties.Property("enforce(a,b,a*b+1) is never satisfied", prop.ForAll(
		func(x, y int64) bool {
			cs := NewConstraintSystem()
			a := cs.NewPublic(feltFromInt(x))
			b := cs.NewPrivate(feltFromInt(y))

			av, bv := a.Value(), b.Value()
			var prod fr.Element
			prod.Mul(&av, &bv)
			one := feltFromInt(1)
			prod.Add(&prod, &one)
			c := cs.NewPrivate(prod)

			cs.Enforce("root", a.ToLinearCombination(), b.ToLinearCombination(), c.ToLinearCombination())
			return !cs.IsSatisfied()
		},
		gen.Int64Range(-1000, 1000),
		gen.Int64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}
