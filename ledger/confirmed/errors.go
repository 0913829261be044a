package confirmed

import (
	"errors"
	"fmt"
)

// ErrorKind names a validation failure category. Tag values are stable and
// may be matched on directly; the set is closed.
type ErrorKind int

const (
	// WrongTransactionKind is raised by any constructor when the supplied
	// transaction is not of the expected family.
	WrongTransactionKind ErrorKind = iota + 1
	// MissingFee is raised when a required fee transition is absent: by
	// accepted_deploy for the deploy transaction, and by the rejected
	// constructors and the unconfirmed queries for the fee transaction.
	MissingFee
	// InvalidFinalizeOpForDeploy is raised when accepted_deploy sees a
	// finalize op other than InitializeMapping/UpdateKeyValue.
	InvalidFinalizeOpForDeploy
	// InvalidFinalizeOpForExecute is raised when accepted_execute sees a
	// *Mapping finalize op.
	InvalidFinalizeOpForExecute
	// MappingCountMismatch is raised when the InitializeMapping count does
	// not equal the deployed program's declared mapping count.
	MappingCountMismatch
	// FinalizeShapeMismatch is raised when the UpdateKeyValue count or the
	// total op count doesn't match what fee privacy requires.
	FinalizeShapeMismatch
	// RejectedKindMismatch is raised when a rejected record's
	// is_deployment/is_execution predicate disagrees with the constructor
	// being called.
	RejectedKindMismatch
	// MissingDeployment is raised by unconfirmed_transaction when a
	// rejected-deployment record has no deployment payload.
	MissingDeployment
	// MissingExecution is raised by unconfirmed_transaction when a
	// rejected-execution record has no execution payload.
	MissingExecution
	// MissingOwner is raised by unconfirmed_transaction when a
	// rejected-deployment record has no program owner.
	MissingOwner
	// CircuitHalt marks a non-recoverable circuit-construction invariant
	// violation. It is never returned by a ConfirmedTransaction
	// constructor; it exists so callers bridging circuit.Environment.Halt
	// panics into this package's error surface have a matching kind.
	CircuitHalt
)

// String renders the kind's tag name, matching the names used in the
// validation error table.
func (k ErrorKind) String() string {
	switch k {
	case WrongTransactionKind:
		return "WrongTransactionKind"
	case MissingFee:
		return "MissingFee"
	case InvalidFinalizeOpForDeploy:
		return "InvalidFinalizeOpForDeploy"
	case InvalidFinalizeOpForExecute:
		return "InvalidFinalizeOpForExecute"
	case MappingCountMismatch:
		return "MappingCountMismatch"
	case FinalizeShapeMismatch:
		return "FinalizeShapeMismatch"
	case RejectedKindMismatch:
		return "RejectedKindMismatch"
	case MissingDeployment:
		return "MissingDeployment"
	case MissingExecution:
		return "MissingExecution"
	case MissingOwner:
		return "MissingOwner"
	case CircuitHalt:
		return "CircuitHalt"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ValidationError is the uniform error type every ConfirmedTransaction
// constructor and query returns on failure. Kind supports switch-style
// handling; Unwrap exposes the underlying cause (if any) for errors.Is/As.
type ValidationError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *ValidationError) Unwrap() error { return e.Cause }

// Is reports whether target is a *ValidationError with the same Kind,
// supporting errors.Is(err, &ValidationError{Kind: WrongTransactionKind}).
func (e *ValidationError) Is(target error) bool {
	var other *ValidationError
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

func newError(kind ErrorKind, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, cause error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}
