package confirmed

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// cmpStubOpts allows comparing the unexported-field stub types directly
// with go-cmp, rather than writing a hand-rolled field-by-field check for
// every new stub shape.
var cmpStubOpts = cmp.AllowUnexported(stubTransaction{}, stubDeployment{}, stubProgram{}, stubFeeTransition{})

// Reconstructing a rejected deployment must recover a transaction
// structurally equal to the one the original deployment would have
// produced, not merely one that satisfies the Transaction interface.
func TestUnconfirmedTransactionStructurallyMatchesOriginalShape(t *testing.T) {
	feeTx := sampleFeeOnlyTx(true)
	rejected := stubRejected{
		deployment:    &stubDeployment{program: stubProgram{numMappings: 2}},
		owner:         &stubOwner{address: "aleo1owner"},
		unconfirmedID: idFromByte(0x99),
	}

	ct, err := RejectedDeploy(0, feeTx, rejected)
	require.NoError(t, err)

	recovered, err := ct.UnconfirmedTransaction(stubTransactionFactory{})
	require.NoError(t, err)

	want := stubTransaction{id: [32]byte{0xDE, 0x70}, deployment: &stubDeployment{program: stubProgram{numMappings: 2}}}
	got := recovered.(stubTransaction)

	if diff := cmp.Diff(want, got, cmpStubOpts); diff != "" {
		t.Fatalf("unconfirmed transaction mismatch (-want +got):\n%s", diff)
	}
}

func TestAcceptedDeployTransactionUnchangedAcrossConfirmation(t *testing.T) {
	tx := sampleAcceptedDeployTx(2, true)
	ops := []FinalizeOperation{
		stubFinalizeOp{kind: InitializeMapping},
		stubFinalizeOp{kind: InitializeMapping},
		stubFinalizeOp{kind: UpdateKeyValue},
	}

	ct, err := AcceptedDeploy(0, tx, ops)
	require.NoError(t, err)

	got := ct.Transaction().(stubTransaction)
	if diff := cmp.Diff(tx, got, cmpStubOpts); diff != "" {
		t.Fatalf("stored transaction diverged from input (-want +got):\n%s", diff)
	}
}
