package circuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConstraintSystemImplicitOne(t *testing.T) {
	cs := NewConstraintSystem()
	require.Equal(t, uint64(0), cs.NumConstants())
	require.Equal(t, uint64(1), cs.NumPublic())
	require.Equal(t, uint64(0), cs.NumPrivate())
	require.Equal(t, uint64(0), cs.NumConstraints())
}

// S1 — allocation counters.
func TestAllocationCounters(t *testing.T) {
	cs := NewConstraintSystem()
	cs.NewPublic(feltFromInt(1))
	cs.NewPrivate(feltFromInt(2))
	cs.NewPrivate(feltFromInt(3))
	cs.NewConstant(feltFromInt(4))
	cs.NewConstant(feltFromInt(5))
	cs.NewConstant(feltFromInt(6))

	require.Equal(t, uint64(3), cs.NumConstants())
	require.Equal(t, uint64(2), cs.NumPublic())
	require.Equal(t, uint64(2), cs.NumPrivate())
	require.Equal(t, uint64(0), cs.NumConstraints())
}

// Invariant 9 — is_satisfied() true iff every enforced triple holds.
func TestIsSatisfied(t *testing.T) {
	cs := NewConstraintSystem()
	a := cs.NewPublic(feltFromInt(3))
	b := cs.NewPrivate(feltFromInt(4))
	c := cs.NewPrivate(feltFromInt(12))

	cs.Enforce("root", a.ToLinearCombination(), b.ToLinearCombination(), c.ToLinearCombination())
	require.True(t, cs.IsSatisfied())
	require.Equal(t, uint64(1), cs.NumConstraints())
}

func TestIsSatisfiedFalseOnMismatch(t *testing.T) {
	cs := NewConstraintSystem()
	a := cs.NewPublic(feltFromInt(3))
	b := cs.NewPrivate(feltFromInt(4))
	c := cs.NewPrivate(feltFromInt(13)) // wrong product

	cs.Enforce("root", a.ToLinearCombination(), b.ToLinearCombination(), c.ToLinearCombination())
	require.False(t, cs.IsSatisfied())
}

func TestUnconstrainedVariables(t *testing.T) {
	cs := NewConstraintSystem()
	a := cs.NewPublic(feltFromInt(1))
	b := cs.NewPrivate(feltFromInt(1))

	cs.Enforce("root", a.ToLinearCombination(), OneLC(), a.ToLinearCombination())

	unconstrained := cs.UnconstrainedVariables()
	require.Contains(t, unconstrained, b.ID())
	require.NotContains(t, unconstrained, a.ID())
}

func TestConstraintIndicesByScope(t *testing.T) {
	cs := NewConstraintSystem()
	a := cs.NewPublic(feltFromInt(1))

	cs.Enforce("alpha", a.ToLinearCombination(), OneLC(), a.ToLinearCombination())
	cs.Enforce("beta", a.ToLinearCombination(), OneLC(), a.ToLinearCombination())
	cs.Enforce("alpha", a.ToLinearCombination(), OneLC(), a.ToLinearCombination())

	require.Equal(t, []uint32{0, 2}, cs.ConstraintIndices("alpha"))
	require.Equal(t, []uint32{1}, cs.ConstraintIndices("beta"))
}

func TestScopeLabelsAndCosts(t *testing.T) {
	cs := NewConstraintSystem()
	scope := NewCircuitScope(cs, "root", nil)
	a := scope.NewPublic(feltFromInt(1))
	Enforce(scope, func() (Variable, LinearCombination, Variable) { return a, OneLC(), a })

	labels := cs.ScopeLabels()
	require.Contains(t, labels, "root")

	costs := cs.ScopeCosts()
	require.Equal(t, int64(1), costs["root"].NumConstraints)
	require.Equal(t, int64(1), costs["root"].NumVariables)
}
