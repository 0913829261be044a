package confirmed

// TransactionID is the 32-byte content-addressed identity of a
// Transaction, comparable with ==.
type TransactionID [32]byte

// FeeTransition is the externally-owned fee payment attached to a
// transaction; this package only asks whether it is public.
type FeeTransition interface {
	IsPublic() bool
}

// ProgramOwner is the externally-owned signer that authorized a program
// deployment. Opaque here.
type ProgramOwner interface{}

// Program is the externally-owned deployed-program descriptor this
// package inspects for its declared mapping count (§4.6 step 5).
type Program interface {
	NumMappings() int
}

// Deployment is the externally-owned deployment payload; Program exposes
// the mapping count accepted_deploy validates against.
type Deployment interface {
	Program() Program
}

// Execution is the externally-owned execution payload. Opaque here; its
// presence/absence is all this package inspects.
type Execution interface{}

// Transaction is the narrow external interface this package consumes
// (§3, §6): identity, kind predicates, and the optional sub-payloads a
// confirmed-transaction constructor validates against.
type Transaction interface {
	ID() TransactionID
	IsExecute() bool
	IsFee() bool
	FeeTransition() (FeeTransition, bool)
	Deployment() (Deployment, bool)
	Execution() (Execution, bool)
	Owner() (ProgramOwner, bool)
}

// Rejected is the externally-owned rejected-execution-outcome record
// (§3): either a rejected deployment (program owner + deployment) or a
// rejected execution.
type Rejected interface {
	IsDeployment() bool
	IsExecution() bool
	Owner() (ProgramOwner, bool)
	Deployment() (Deployment, bool)
	Execution() (Execution, bool)
	// ToUnconfirmedID reconstructs the pre-confirmation transaction id
	// from the fee transition retained by the confirmation (§4.8).
	ToUnconfirmedID(fee FeeTransition) TransactionID
}

// TransactionFactory constructs the external Transaction values
// unconfirmed_transaction needs to rebuild (§4.8): Transaction::
// from_deployment / from_execution in the source. ConfirmedTransaction
// never constructs a Transaction itself — it is an external interface —
// so callers supply this capability alongside the rejected record.
type TransactionFactory interface {
	FromDeployment(owner ProgramOwner, deployment Deployment, fee FeeTransition) Transaction
	FromExecution(execution Execution, fee FeeTransition) Transaction
}
