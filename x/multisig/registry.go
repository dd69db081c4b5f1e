package multisig

import (
	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
)

// Registry maintains the owner roster and the quorum threshold. It is a
// leaf component: the Ledger consults it read-only during confirmation,
// only the Registry's own operations mutate the roster.
type Registry struct {
	bucket  RosterBucket
	emitter signet.Emitter
}

// NewRegistry returns a registry announcing roster changes through given
// emitter.
func NewRegistry(emitter signet.Emitter) Registry {
	if emitter == nil {
		emitter = signet.NopEmitter{}
	}
	return Registry{
		bucket:  NewRosterBucket(),
		emitter: emitter,
	}
}

// Initialize stores the first roster. It fails if a roster exists
// already or if the given configuration is invalid.
func (r Registry) Initialize(db signet.KVStore, owners []signet.Address, threshold uint32) error {
	existing, err := r.bucket.GetRoster(db)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.Wrap(errors.ErrState, "roster already initialized")
	}
	roster := &Roster{Owners: owners, Threshold: threshold}
	return r.bucket.SaveRoster(db, roster)
}

// AddOwner inserts addr into the roster. It fails with ErrAlreadyOwner
// when the address is present already.
func (r Registry) AddOwner(db signet.KVStore, addr signet.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	roster, err := r.roster(db)
	if err != nil {
		return err
	}
	if roster.Contains(addr) {
		return errors.Wrapf(ErrAlreadyOwner, "%s", addr)
	}
	roster.Owners = append(roster.Owners, addr)
	if err := r.bucket.SaveRoster(db, roster); err != nil {
		return err
	}
	r.emitter.Emit(ownerAddedEvent(addr))
	return nil
}

// RemoveOwner removes addr from the roster. It fails with ErrNotOwner
// when the address is absent and with ErrLastOwner when removal would
// empty the roster. The threshold is not adjusted and confirmations
// already recorded by the removed owner on pending proposals are kept.
func (r Registry) RemoveOwner(db signet.KVStore, addr signet.Address) error {
	roster, err := r.roster(db)
	if err != nil {
		return err
	}
	if len(roster.Owners) == 1 {
		return errors.Wrap(ErrLastOwner, "roster must not be emptied")
	}
	i := roster.index(addr)
	if i == -1 {
		return errors.Wrapf(ErrNotOwner, "%s", addr)
	}
	roster.Owners = append(roster.Owners[:i], roster.Owners[i+1:]...)
	if err := r.bucket.SaveRoster(db, roster); err != nil {
		return err
	}
	r.emitter.Emit(ownerRemovedEvent(addr))
	return nil
}

// IsOwner returns true if addr is part of the roster.
func (r Registry) IsOwner(db signet.ReadOnlyKVStore, addr signet.Address) (bool, error) {
	roster, err := r.roster(db)
	if err != nil {
		return false, err
	}
	return roster.Contains(addr), nil
}

// Threshold returns the quorum requirement.
func (r Registry) Threshold(db signet.ReadOnlyKVStore) (uint32, error) {
	roster, err := r.roster(db)
	if err != nil {
		return 0, err
	}
	return roster.Threshold, nil
}

// Owners returns a copy of the current owner set.
func (r Registry) Owners(db signet.ReadOnlyKVStore) ([]signet.Address, error) {
	roster, err := r.roster(db)
	if err != nil {
		return nil, err
	}
	owners := make([]signet.Address, len(roster.Owners))
	copy(owners, roster.Owners)
	return owners, nil
}

func (r Registry) roster(db signet.ReadOnlyKVStore) (*Roster, error) {
	roster, err := r.bucket.GetRoster(db)
	if err != nil {
		return nil, err
	}
	if roster == nil {
		return nil, errors.Wrap(errors.ErrState, "roster not initialized")
	}
	return roster, nil
}
