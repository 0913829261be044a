package circuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithDebugLoggingDoesNotChangeSatisfaction(t *testing.T) {
	cs := NewConstraintSystem(WithDebugLogging(true))
	a := cs.NewPublic(feltFromInt(2))
	cs.Enforce("root", a.ToLinearCombination(), OneLC(), a.ToLinearCombination())
	require.True(t, cs.IsSatisfied())
}

func TestWithCapacityHintPreservesBehavior(t *testing.T) {
	cs := NewConstraintSystem(WithCapacityHint(16))
	require.Equal(t, uint64(0), cs.NumConstraints())
	a := cs.NewPublic(feltFromInt(1))
	cs.Enforce("root", a.ToLinearCombination(), OneLC(), a.ToLinearCombination())
	require.Equal(t, uint64(1), cs.NumConstraints())
}
