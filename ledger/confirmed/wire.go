package confirmed

import (
	"fmt"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
)

// wireVersion is the envelope format version stamped on every encoded
// ConfirmedTransaction. Bumping Minor/Patch must stay backward-readable;
// bumping Major signals an incompatible envelope layout.
var wireVersion = semver.Version{Major: 1, Minor: 0, Patch: 0}

// TransactionCodec is the separate serialize collaborator (§6) this
// package defers to for the externally-owned Transaction payload: the
// core only requires lossless round-tripping, not a fixed byte layout.
type TransactionCodec interface {
	MarshalTransaction(Transaction) ([]byte, error)
	UnmarshalTransaction([]byte) (Transaction, error)
}

// FinalizeOperationCodec is the serialize collaborator for the
// externally-owned FinalizeOperation payload.
type FinalizeOperationCodec interface {
	MarshalFinalizeOperation(FinalizeOperation) ([]byte, error)
	UnmarshalFinalizeOperation([]byte) (FinalizeOperation, error)
}

// RejectedCodec is the serialize collaborator for the externally-owned
// Rejected payload.
type RejectedCodec interface {
	MarshalRejected(Rejected) ([]byte, error)
	UnmarshalRejected([]byte) (Rejected, error)
}

// wireEnvelope is the CBOR-encoded form of a ConfirmedTransaction: the
// tagged-variant discriminant, index, transaction payload, and either
// finalize ops or a rejected payload (§6 "Persisted/wire format").
// Integer map keys keep the encoding compact, the same convention
// gnark-crypto's own wire structs use for field elements.
type wireEnvelope struct {
	Version     string   `cbor:"1,keyasint"`
	Kind        uint8    `cbor:"2,keyasint"`
	Index       uint32   `cbor:"3,keyasint"`
	Transaction []byte   `cbor:"4,keyasint"`
	FinalizeOps [][]byte `cbor:"5,keyasint,omitempty"`
	Rejected    []byte   `cbor:"6,keyasint,omitempty"`
}

// MarshalCBOR encodes ct into the wire envelope, delegating payload
// encoding to the supplied codecs.
func MarshalCBOR(ct *ConfirmedTransaction, txCodec TransactionCodec, foCodec FinalizeOperationCodec, rejCodec RejectedCodec) ([]byte, error) {
	txBytes, err := txCodec.MarshalTransaction(ct.transaction)
	if err != nil {
		return nil, fmt.Errorf("confirmed: marshal transaction: %w", err)
	}

	env := wireEnvelope{
		Version:     wireVersion.String(),
		Kind:        uint8(ct.kind),
		Index:       ct.index,
		Transaction: txBytes,
	}

	if ct.IsAccepted() {
		env.FinalizeOps = make([][]byte, len(ct.finalizeOps))
		for i, op := range ct.finalizeOps {
			b, err := foCodec.MarshalFinalizeOperation(op)
			if err != nil {
				return nil, fmt.Errorf("confirmed: marshal finalize op %d: %w", i, err)
			}
			env.FinalizeOps[i] = b
		}
	} else {
		rejBytes, err := rejCodec.MarshalRejected(ct.rejected)
		if err != nil {
			return nil, fmt.Errorf("confirmed: marshal rejected: %w", err)
		}
		env.Rejected = rejBytes
	}

	out, err := cbor.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("confirmed: cbor encode envelope: %w", err)
	}
	return out, nil
}

// UnmarshalCBOR decodes a wire envelope back into a ConfirmedTransaction,
// delegating payload decoding to the supplied codecs and reconstructing
// the tagged variant's fields directly (bypassing the validating
// constructors, since a previously-validated confirmation round-trips by
// construction).
func UnmarshalCBOR(data []byte, txCodec TransactionCodec, foCodec FinalizeOperationCodec, rejCodec RejectedCodec) (*ConfirmedTransaction, error) {
	var env wireEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("confirmed: cbor decode envelope: %w", err)
	}

	version, err := semver.Parse(env.Version)
	if err != nil {
		return nil, fmt.Errorf("confirmed: parse envelope version %q: %w", env.Version, err)
	}
	if version.Major != wireVersion.Major {
		return nil, fmt.Errorf("confirmed: incompatible envelope version %s (expected major %d)", version, wireVersion.Major)
	}

	tx, err := txCodec.UnmarshalTransaction(env.Transaction)
	if err != nil {
		return nil, fmt.Errorf("confirmed: unmarshal transaction: %w", err)
	}

	ct := &ConfirmedTransaction{kind: kind(env.Kind), index: env.Index, transaction: tx}

	switch ct.kind {
	case acceptedDeploy, acceptedExecute:
		ops := make([]FinalizeOperation, len(env.FinalizeOps))
		for i, b := range env.FinalizeOps {
			op, err := foCodec.UnmarshalFinalizeOperation(b)
			if err != nil {
				return nil, fmt.Errorf("confirmed: unmarshal finalize op %d: %w", i, err)
			}
			ops[i] = op
		}
		ct.finalizeOps = ops

	case rejectedDeploy, rejectedExecute:
		rej, err := rejCodec.UnmarshalRejected(env.Rejected)
		if err != nil {
			return nil, fmt.Errorf("confirmed: unmarshal rejected: %w", err)
		}
		ct.rejected = rej

	default:
		return nil, fmt.Errorf("confirmed: unknown envelope kind %d", env.Kind)
	}

	return ct, nil
}
