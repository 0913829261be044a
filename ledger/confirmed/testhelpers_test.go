package confirmed

import "encoding/json"

// The stub types below implement this package's external interfaces the
// way a real ledger crate would, minimally enough to drive every
// validating constructor and the unconfirmed-identity reconstruction
// (§8 scenarios S2-S5).

type stubFeeTransition struct{ public bool }

func (f stubFeeTransition) IsPublic() bool { return f.public }

type stubProgram struct{ numMappings int }

func (p stubProgram) NumMappings() int { return p.numMappings }

type stubDeployment struct{ program stubProgram }

func (d stubDeployment) Program() Program { return d.program }

type stubExecution struct{ tag string }

type stubOwner struct{ address string }

type stubTransaction struct {
	id         TransactionID
	isExecute  bool
	isFee      bool
	fee        *stubFeeTransition
	deployment *stubDeployment
	execution  *stubExecution
	owner      *stubOwner
}

func (t stubTransaction) ID() TransactionID  { return t.id }
func (t stubTransaction) IsExecute() bool    { return t.isExecute }
func (t stubTransaction) IsFee() bool        { return t.isFee }
func (t stubTransaction) FeeTransition() (FeeTransition, bool) {
	if t.fee == nil {
		return nil, false
	}
	return *t.fee, true
}
func (t stubTransaction) Deployment() (Deployment, bool) {
	if t.deployment == nil {
		return nil, false
	}
	return *t.deployment, true
}
func (t stubTransaction) Execution() (Execution, bool) {
	if t.execution == nil {
		return nil, false
	}
	return t.execution, true
}
func (t stubTransaction) Owner() (ProgramOwner, bool) {
	if t.owner == nil {
		return nil, false
	}
	return *t.owner, true
}

// jsonStubTransaction mirrors stubTransaction with exported fields, purely
// so the wire test's JSON codec (standing in for a real Transaction's own
// wire format, per §6) can actually round-trip values through
// encoding/json, which only sees exported fields.
type jsonStubTransaction struct {
	ID         TransactionID
	IsExecute  bool
	IsFee      bool
	FeePublic  *bool
	NumMappings *int
	HasOwner   bool
}

func (t stubTransaction) MarshalJSON() ([]byte, error) {
	j := jsonStubTransaction{ID: t.id, IsExecute: t.isExecute, IsFee: t.isFee, HasOwner: t.owner != nil}
	if t.fee != nil {
		j.FeePublic = &t.fee.public
	}
	if t.deployment != nil {
		n := t.deployment.program.numMappings
		j.NumMappings = &n
	}
	return json.Marshal(j)
}

func (t *stubTransaction) UnmarshalJSON(b []byte) error {
	var j jsonStubTransaction
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	t.id, t.isExecute, t.isFee = j.ID, j.IsExecute, j.IsFee
	if j.FeePublic != nil {
		t.fee = &stubFeeTransition{public: *j.FeePublic}
	}
	if j.NumMappings != nil {
		t.deployment = &stubDeployment{program: stubProgram{numMappings: *j.NumMappings}}
	}
	if j.HasOwner {
		t.owner = &stubOwner{address: "aleo1owner"}
	}
	return nil
}

type stubFinalizeOp struct{ kind FinalizeOperationKind }

func (o stubFinalizeOp) Kind() FinalizeOperationKind { return o.kind }

func (o stubFinalizeOp) MarshalJSON() ([]byte, error) { return json.Marshal(int(o.kind)) }

func (o *stubFinalizeOp) UnmarshalJSON(b []byte) error {
	var k int
	if err := json.Unmarshal(b, &k); err != nil {
		return err
	}
	o.kind = FinalizeOperationKind(k)
	return nil
}

type stubRejected struct {
	deployment *stubDeployment
	execution  *stubExecution
	owner      *stubOwner
	unconfirmedID TransactionID
}

func (r stubRejected) IsDeployment() bool { return r.deployment != nil }
func (r stubRejected) IsExecution() bool  { return r.execution != nil }
func (r stubRejected) Owner() (ProgramOwner, bool) {
	if r.owner == nil {
		return nil, false
	}
	return *r.owner, true
}
func (r stubRejected) Deployment() (Deployment, bool) {
	if r.deployment == nil {
		return nil, false
	}
	return *r.deployment, true
}
func (r stubRejected) Execution() (Execution, bool) {
	if r.execution == nil {
		return nil, false
	}
	return r.execution, true
}
func (r stubRejected) ToUnconfirmedID(fee FeeTransition) TransactionID { return r.unconfirmedID }

// jsonStubRejected mirrors stubRejected with exported fields for the same
// reason jsonStubTransaction does.
type jsonStubRejected struct {
	IsDeployment  bool
	IsExecution   bool
	NumMappings   *int
	HasOwner      bool
	UnconfirmedID TransactionID
}

func (r stubRejected) MarshalJSON() ([]byte, error) {
	j := jsonStubRejected{
		IsDeployment:  r.deployment != nil,
		IsExecution:   r.execution != nil,
		HasOwner:      r.owner != nil,
		UnconfirmedID: r.unconfirmedID,
	}
	if r.deployment != nil {
		n := r.deployment.program.numMappings
		j.NumMappings = &n
	}
	return json.Marshal(j)
}

func (r *stubRejected) UnmarshalJSON(b []byte) error {
	var j jsonStubRejected
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	r.unconfirmedID = j.UnconfirmedID
	if j.IsDeployment {
		n := 0
		if j.NumMappings != nil {
			n = *j.NumMappings
		}
		r.deployment = &stubDeployment{program: stubProgram{numMappings: n}}
	}
	if j.IsExecution {
		r.execution = &stubExecution{}
	}
	if j.HasOwner {
		r.owner = &stubOwner{address: "aleo1owner"}
	}
	return nil
}

type stubTransactionFactory struct{}

func (stubTransactionFactory) FromDeployment(owner ProgramOwner, deployment Deployment, fee FeeTransition) Transaction {
	return stubTransaction{id: [32]byte{0xDE, 0x70}, deployment: &stubDeployment{program: deployment.Program().(stubProgram)}}
}

func (stubTransactionFactory) FromExecution(execution Execution, fee FeeTransition) Transaction {
	return stubTransaction{id: [32]byte{0xEC}, isExecute: true, execution: execution.(*stubExecution)}
}

func idFromByte(b byte) TransactionID {
	var id TransactionID
	id[0] = b
	return id
}

func sampleAcceptedExecuteTx(isPublicFee bool) stubTransaction {
	fee := stubFeeTransition{public: isPublicFee}
	return stubTransaction{id: idFromByte(0x01), isExecute: true, fee: &fee}
}

func sampleAcceptedDeployTx(numMappings int, isPublicFee bool) stubTransaction {
	fee := stubFeeTransition{public: isPublicFee}
	dep := stubDeployment{program: stubProgram{numMappings: numMappings}}
	return stubTransaction{id: idFromByte(0x02), fee: &fee, deployment: &dep}
}

func sampleFeeOnlyTx(isPublicFee bool) stubTransaction {
	fee := stubFeeTransition{public: isPublicFee}
	return stubTransaction{id: idFromByte(0x03), isFee: true, fee: &fee}
}

