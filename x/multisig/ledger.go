package multisig

import (
	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
)

// Mover requests a value transfer from the hosting environment. The
// engine only reacts to success or failure, it does not implement ledger
// accounting.
type Mover interface {
	Move(db signet.KVStore, destination signet.Address, amount int64) error
}

// Ledger maintains proposals, their per-owner confirmation sets and
// execution status. Quorum is evaluated against the Registry within the
// same confirming call, so the confirmation that reaches the threshold
// is the one that triggers execution.
type Ledger struct {
	bucket      ProposalBucket
	registry    Registry
	mover       Mover
	fingerprint Fingerprinter
	emitter     signet.Emitter
}

// NewLedger returns a ledger bound to given collaborators. A nil
// fingerprinter falls back to SHA256Fingerprint, a nil emitter discards
// all events.
func NewLedger(registry Registry, mover Mover, fingerprint Fingerprinter, emitter signet.Emitter) Ledger {
	if fingerprint == nil {
		fingerprint = SHA256Fingerprint
	}
	if emitter == nil {
		emitter = signet.NopEmitter{}
	}
	return Ledger{
		bucket:      NewProposalBucket(),
		registry:    registry,
		mover:       mover,
		fingerprint: fingerprint,
		emitter:     emitter,
	}
}

// Propose opens a new proposal with an empty confirmation set and
// returns its id. Ids are dense and assigned in creation order. Any
// caller may propose.
func (l Ledger) Propose(db signet.KVStore, destination signet.Address, amount int64, payload []byte) (int64, error) {
	p := &Proposal{
		Fingerprint: l.fingerprint(destination, amount, payload),
		Destination: destination,
		Amount:      amount,
		Payload:     payload,
	}
	id, err := l.bucket.Create(db, p)
	if err != nil {
		return 0, err
	}
	l.emitter.Emit(proposalCreatedEvent(id, p))
	return id, nil
}

// Confirm records an approval of proposal id by confirmer and, once the
// count of distinct confirmers reaches the threshold, executes the
// proposal within this same call.
//
// Preconditions are checked in order, first failure wins: the proposal
// must exist, must not be terminal, the confirmer must be a current
// owner and must not have confirmed before. When execution is triggered
// and the transfer fails, the recorded confirmation is kept so a later
// attempt can still execute the proposal.
func (l Ledger) Confirm(db signet.KVStore, id int64, confirmer signet.Address) error {
	p, err := l.bucket.GetProposal(db, id)
	if err != nil {
		return err
	}
	if p == nil {
		return errors.Wrapf(ErrInvalidTransactionID, "%d", id)
	}
	if p.Executed {
		return errors.Wrapf(ErrAlreadyExecuted, "%d", id)
	}
	owner, err := l.registry.IsOwner(db, confirmer)
	if err != nil {
		return err
	}
	if !owner {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", confirmer)
	}
	if p.HasConfirmed(confirmer) {
		return errors.Wrapf(ErrAlreadyConfirmed, "%s", confirmer)
	}

	p.Confirmations = append(p.Confirmations, confirmer)
	if err := l.bucket.Update(db, id, p); err != nil {
		return err
	}
	l.emitter.Emit(confirmationRecordedEvent(id, confirmer))

	threshold, err := l.registry.Threshold(db)
	if err != nil {
		return err
	}
	if uint32(len(p.Confirmations)) >= threshold {
		return l.execute(db, id, p)
	}
	return nil
}

// Execute attempts to execute proposal id. It is invoked internally by
// Confirm when quorum is reached, but may also be called directly, for
// example to retry after a failed transfer.
func (l Ledger) Execute(db signet.KVStore, id int64) error {
	p, err := l.bucket.GetProposal(db, id)
	if err != nil {
		return err
	}
	if p == nil {
		return errors.Wrapf(ErrInvalidTransactionID, "%d", id)
	}
	return l.execute(db, id, p)
}

// execute runs the failure-atomicity sensitive part: transfer first,
// state mutation second, and only on transfer success. A failed transfer
// must never be recorded as success, and a successful transfer is
// immediately recorded (the state write is infallible by contract once
// the transfer went through).
func (l Ledger) execute(db signet.KVStore, id int64, p *Proposal) error {
	if p.Executed {
		return errors.Wrapf(ErrAlreadyExecuted, "%d", id)
	}
	threshold, err := l.registry.Threshold(db)
	if err != nil {
		return err
	}
	confirmations := uint32(len(p.Confirmations))
	if confirmations < threshold {
		return errors.Wrapf(ErrNotEnoughConfirmations, "%d of %d", confirmations, threshold)
	}

	if err := l.mover.Move(db, p.Destination, p.Amount); err != nil {
		return errors.Wrap(ErrTransferFailed, err.Error())
	}

	p.ConfirmationCount = confirmations
	p.Executed = true
	p.Confirmations = nil
	if err := l.bucket.Update(db, id, p); err != nil {
		return err
	}
	l.emitter.Emit(transactionExecutedEvent(id, p.Destination, p.Amount))
	return nil
}

// Proposal returns the proposal with given id, or nil when it does not
// exist. Lookups prefer a default over an error.
func (l Ledger) Proposal(db signet.ReadOnlyKVStore, id int64) (*Proposal, error) {
	return l.bucket.GetProposal(db, id)
}

// Confirmations returns the confirmation set of proposal id. Unknown ids
// yield an empty set.
func (l Ledger) Confirmations(db signet.ReadOnlyKVStore, id int64) ([]signet.Address, error) {
	p, err := l.bucket.GetProposal(db, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return p.Confirmations, nil
}

// ProposalCount returns how many proposals were created so far.
func (l Ledger) ProposalCount(db signet.ReadOnlyKVStore) (int64, error) {
	return l.bucket.Count(db)
}

// IsConfirmed returns true when the current confirmation set of proposal
// id satisfies the threshold. Unknown and executed proposals report
// false, as their sets are empty.
func (l Ledger) IsConfirmed(db signet.ReadOnlyKVStore, id int64) (bool, error) {
	p, err := l.bucket.GetProposal(db, id)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}
	threshold, err := l.registry.Threshold(db)
	if err != nil {
		return false, err
	}
	return uint32(len(p.Confirmations)) >= threshold, nil
}
