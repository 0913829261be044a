// Package confirmed validates and queries ConfirmedTransaction records: a
// tagged union over (accepted|rejected) x (deploy|execute) wrapping an
// already-built Transaction with its post-execution outcome. It is
// independent of the circuit package — nothing here touches a
// ConstraintSystem.
package confirmed

// kind is the closed tag set of a ConfirmedTransaction.
type kind int

const (
	acceptedDeploy kind = iota
	acceptedExecute
	rejectedDeploy
	rejectedExecute
)

// ConfirmedTransaction is a transaction together with its post-execution
// outcome: either the finalize operations it produced (accepted) or the
// rejected-execution record and fee-only residue transaction (rejected).
// Constructed only through the validating factories below; once
// constructed, every field is read-only.
type ConfirmedTransaction struct {
	kind        kind
	index       uint32
	transaction Transaction
	finalizeOps []FinalizeOperation
	rejected    Rejected
}

// AcceptedDeploy validates and constructs an accepted-deployment
// confirmation (§4.6).
//
//  1. tx must carry a deployment payload, else WrongTransactionKind.
//  2. tx must carry a fee transition, else MissingFee.
//  3. finalizeOps must partition into InitializeMapping/UpdateKeyValue only,
//     else InvalidFinalizeOpForDeploy.
//  4. the InitializeMapping count must equal the deployed program's
//     declared mapping count, else MappingCountMismatch.
//  5. the UpdateKeyValue count must equal 1 if the fee is public and 0
//     otherwise, and every op must be accounted for, else
//     FinalizeShapeMismatch.
func AcceptedDeploy(index uint32, tx Transaction, finalizeOps []FinalizeOperation) (*ConfirmedTransaction, error) {
	deployment, ok := tx.Deployment()
	if !ok {
		return nil, newError(WrongTransactionKind, "accepted_deploy: transaction has no deployment payload")
	}

	fee, ok := tx.FeeTransition()
	if !ok {
		return nil, newError(MissingFee, "accepted_deploy: transaction has no fee transition")
	}
	pubFee := 0
	if fee.IsPublic() {
		pubFee = 1
	}

	var initCount, updateCount int
	for _, op := range finalizeOps {
		switch op.Kind() {
		case InitializeMapping:
			initCount++
		case UpdateKeyValue:
			updateCount++
		default:
			return nil, newError(InvalidFinalizeOpForDeploy, "unexpected finalize op %s", op.Kind())
		}
	}

	wantMappings := deployment.Program().NumMappings()
	if initCount != wantMappings {
		return nil, newError(MappingCountMismatch, "got %d InitializeMapping ops, program declares %d mappings", initCount, wantMappings)
	}
	if updateCount != pubFee || initCount+updateCount != len(finalizeOps) {
		return nil, newError(FinalizeShapeMismatch, "update_count=%d pub_fee=%d total_ops=%d accounted=%d", updateCount, pubFee, len(finalizeOps), initCount+updateCount)
	}

	return &ConfirmedTransaction{kind: acceptedDeploy, index: index, transaction: tx, finalizeOps: finalizeOps}, nil
}

// AcceptedExecute validates and constructs an accepted-execution
// confirmation (§4.6): every finalize op must be
// InsertKeyValue/UpdateKeyValue/RemoveKeyValue, and tx must be an execute
// transaction.
func AcceptedExecute(index uint32, tx Transaction, finalizeOps []FinalizeOperation) (*ConfirmedTransaction, error) {
	for _, op := range finalizeOps {
		switch op.Kind() {
		case InsertKeyValue, UpdateKeyValue, RemoveKeyValue:
		default:
			return nil, newError(InvalidFinalizeOpForExecute, "unexpected finalize op %s", op.Kind())
		}
	}
	if !tx.IsExecute() {
		return nil, newError(WrongTransactionKind, "accepted_execute: transaction is not an execute transaction")
	}

	return &ConfirmedTransaction{kind: acceptedExecute, index: index, transaction: tx, finalizeOps: finalizeOps}, nil
}

// RejectedDeploy validates and constructs a rejected-deployment
// confirmation (§4.6). feeTx stores only the fee-only residue of the
// originally submitted transaction.
//
// Beyond the two checks the source itself performs (rejected.IsDeployment,
// feeTx.IsFee), this also validates the fee transition's presence at
// construction time rather than deferring the check to a later
// UnconfirmedTransaction call — the tightening flagged as an open question
// (§9): the source lets a rejected_deploy with no fee transition succeed,
// only to fail later and less informatively.
func RejectedDeploy(index uint32, feeTx Transaction, rejected Rejected) (*ConfirmedTransaction, error) {
	if !rejected.IsDeployment() {
		return nil, newError(RejectedKindMismatch, "rejected_deploy: rejected record is not a deployment")
	}
	if !feeTx.IsFee() {
		return nil, newError(WrongTransactionKind, "rejected_deploy: fee transaction is not a fee transaction")
	}
	if _, ok := feeTx.FeeTransition(); !ok {
		return nil, newError(MissingFee, "rejected_deploy: fee transaction has no fee transition")
	}

	return &ConfirmedTransaction{kind: rejectedDeploy, index: index, transaction: feeTx, rejected: rejected}, nil
}

// RejectedExecute is symmetric to RejectedDeploy with IsExecution (§4.6).
func RejectedExecute(index uint32, feeTx Transaction, rejected Rejected) (*ConfirmedTransaction, error) {
	if !rejected.IsExecution() {
		return nil, newError(RejectedKindMismatch, "rejected_execute: rejected record is not an execution")
	}
	if !feeTx.IsFee() {
		return nil, newError(WrongTransactionKind, "rejected_execute: fee transaction is not a fee transaction")
	}
	if _, ok := feeTx.FeeTransition(); !ok {
		return nil, newError(MissingFee, "rejected_execute: fee transaction has no fee transition")
	}

	return &ConfirmedTransaction{kind: rejectedExecute, index: index, transaction: feeTx, rejected: rejected}, nil
}

// IsAccepted reports whether ct is an accepted-deploy or accepted-execute
// confirmation.
func (ct *ConfirmedTransaction) IsAccepted() bool {
	return ct.kind == acceptedDeploy || ct.kind == acceptedExecute
}

// IsRejected reports whether ct is a rejected-deploy or rejected-execute
// confirmation.
func (ct *ConfirmedTransaction) IsRejected() bool { return !ct.IsAccepted() }

// Index returns the confirmation's position within its containing block.
func (ct *ConfirmedTransaction) Index() uint32 { return ct.index }

// Transaction returns the stored transaction: the original transaction for
// accepted variants, the fee-only residue for rejected variants.
func (ct *ConfirmedTransaction) Transaction() Transaction { return ct.transaction }

// IntoTransaction returns the stored transaction, consuming no state of
// its own in Go (there is no move-semantics distinction from Transaction);
// kept as a distinct accessor for parity with the source's ownership-
// transferring variant.
func (ct *ConfirmedTransaction) IntoTransaction() Transaction { return ct.transaction }

// Variant returns a fixed human label identifying the tagged variant.
func (ct *ConfirmedTransaction) Variant() string {
	switch ct.kind {
	case acceptedDeploy:
		return "accepted deploy"
	case acceptedExecute:
		return "accepted execute"
	case rejectedDeploy:
		return "rejected deploy"
	case rejectedExecute:
		return "rejected execute"
	default:
		return ""
	}
}

// NumFinalize returns len(finalizeOps) for accepted variants, 0 for
// rejected variants.
func (ct *ConfirmedTransaction) NumFinalize() int {
	if ct.IsAccepted() {
		return len(ct.finalizeOps)
	}
	return 0
}

// FinalizeOperations returns (ops, true) for accepted variants and
// (nil, false) for rejected variants.
func (ct *ConfirmedTransaction) FinalizeOperations() ([]FinalizeOperation, bool) {
	if ct.IsAccepted() {
		return ct.finalizeOps, true
	}
	return nil, false
}

// UnconfirmedID recovers the transaction's pre-confirmation identity
// (§4.8). For accepted variants this is the stored transaction's id
// verbatim; for rejected variants it is reconstructed from the rejected
// record and the retained fee transition.
func (ct *ConfirmedTransaction) UnconfirmedID() (TransactionID, error) {
	if ct.IsAccepted() {
		return ct.transaction.ID(), nil
	}

	fee, ok := ct.transaction.FeeTransition()
	if !ok {
		return TransactionID{}, newError(MissingFee, "unconfirmed_id: fee transaction has no fee transition")
	}
	return ct.rejected.ToUnconfirmedID(fee), nil
}

// UnconfirmedTransaction recovers the pre-confirmation transaction itself
// (§4.8). For accepted variants this is the stored transaction verbatim.
// For rejected variants it reconstructs the transaction via factory,
// which plays the role of the external Transaction::from_deployment /
// Transaction::from_execution constructors — ConfirmedTransaction never
// builds a Transaction itself, since Transaction is an external interface
// (§6).
func (ct *ConfirmedTransaction) UnconfirmedTransaction(factory TransactionFactory) (Transaction, error) {
	if ct.IsAccepted() {
		return ct.transaction, nil
	}

	fee, ok := ct.transaction.FeeTransition()
	if !ok {
		return nil, newError(MissingFee, "unconfirmed_transaction: fee transaction has no fee transition")
	}

	switch ct.kind {
	case rejectedDeploy:
		owner, ok := ct.rejected.Owner()
		if !ok {
			return nil, newError(MissingOwner, "unconfirmed_transaction: rejected deployment has no program owner")
		}
		deployment, ok := ct.rejected.Deployment()
		if !ok {
			return nil, newError(MissingDeployment, "unconfirmed_transaction: rejected record has no deployment")
		}
		return factory.FromDeployment(owner, deployment, fee), nil

	case rejectedExecute:
		execution, ok := ct.rejected.Execution()
		if !ok {
			return nil, newError(MissingExecution, "unconfirmed_transaction: rejected record has no execution")
		}
		return factory.FromExecution(execution, fee), nil

	default:
		return nil, newError(WrongTransactionKind, "unconfirmed_transaction: unreachable confirmation kind")
	}
}
