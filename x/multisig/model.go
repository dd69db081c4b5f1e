package multisig

import (
	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
	"github.com/signet-labs/signet/orm"
)

const (
	// RosterBucketName is where we store the owner roster
	RosterBucketName = "roster"
	// ProposalBucketName is where we store the proposals
	ProposalBucketName = "proposals"
	// SequenceName is an auto-increment ID counter for proposals
	SequenceName = "id"

	// To avoid burning CPU, this is the maximum number of owners allowed
	// on a single roster.
	maxOwnersAllowed = 100
)

// Roster is the owner registry state: the set of addresses entitled to
// confirm proposals and the quorum threshold. The threshold is fixed at
// construction and never auto-adjusted; removing owners may leave it
// temporarily unreachable, which is a valid if awkward state.
type Roster struct {
	Owners    []signet.Address
	Threshold uint32
}

var _ orm.Model = (*Roster)(nil)

func (r *Roster) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(r)
}

func (r *Roster) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, r)
}

// Validate enforces the roster invariants: at least one owner, no
// duplicates, threshold at least one.
func (r *Roster) Validate() error {
	switch n := len(r.Owners); {
	case n == 0:
		return errors.Wrap(errors.ErrModel, "no owners")
	case n > maxOwnersAllowed:
		return errors.Wrap(errors.ErrModel, "too many owners")
	}
	for _, o := range r.Owners {
		if err := o.Validate(); err != nil {
			return errors.Wrapf(err, "owner %s", o)
		}
	}
	if dup := r.duplicate(); dup != nil {
		return errors.Wrapf(errors.ErrModel, "duplicate owner %s", dup)
	}
	if r.Threshold < 1 {
		return errors.Wrap(errors.ErrModel, "threshold must be greater than 0")
	}
	return nil
}

// Contains returns true if given address is part of the roster.
func (r *Roster) Contains(addr signet.Address) bool {
	return r.index(addr) != -1
}

func (r *Roster) index(addr signet.Address) int {
	if addr == nil {
		return -1
	}
	for i, o := range r.Owners {
		if o.Equals(addr) {
			return i
		}
	}
	return -1
}

// duplicate returns the first address present more than once, or nil.
func (r *Roster) duplicate() signet.Address {
	seen := make(map[string]struct{}, len(r.Owners))
	for _, o := range r.Owners {
		if _, ok := seen[string(o)]; ok {
			return o
		}
		seen[string(o)] = struct{}{}
	}
	return nil
}

// Proposal is a pending or executed request to transfer value to a
// destination. It is created by propose, mutated only by confirm and
// execute, and never deleted.
type Proposal struct {
	// Fingerprint binds destination, amount and payload for external
	// auditability. It is not used for deduplication.
	Fingerprint []byte
	Destination signet.Address
	Amount      int64
	Payload     []byte
	// ConfirmationCount is recorded at execution time, 0 until executed.
	ConfirmationCount uint32
	// Executed is monotonic, it never reverts to false.
	Executed bool
	// Confirmations is the set of owner addresses that confirmed this
	// proposal, in the order the confirmations were received. It is
	// cleared upon successful execution.
	Confirmations []signet.Address
}

var _ orm.Model = (*Proposal)(nil)

func (p *Proposal) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(p)
}

func (p *Proposal) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, p)
}

func (p *Proposal) Validate() error {
	if err := p.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if p.Amount < 0 {
		return errors.Wrapf(errors.ErrModel, "negative amount: %d", p.Amount)
	}
	if len(p.Fingerprint) == 0 {
		return errors.Wrap(errors.ErrModel, "missing fingerprint")
	}
	if p.Executed && len(p.Confirmations) != 0 {
		return errors.Wrap(errors.ErrModel, "executed proposal retains confirmations")
	}
	return nil
}

// HasConfirmed returns true if given address already confirmed this
// proposal.
func (p *Proposal) HasConfirmed(addr signet.Address) bool {
	for _, c := range p.Confirmations {
		if c.Equals(addr) {
			return true
		}
	}
	return false
}

// RosterBucket is a type-safe wrapper around orm.Bucket that stores the
// single owner roster under a fixed key.
type RosterBucket struct {
	orm.Bucket
}

var rosterKey = []byte("current")

// NewRosterBucket initializes a RosterBucket with default name
func NewRosterBucket() RosterBucket {
	return RosterBucket{
		Bucket: orm.NewBucket(RosterBucketName, new(Roster)),
	}
}

// GetRoster returns the stored roster or nil when none was initialized
// yet.
func (b RosterBucket) GetRoster(db signet.ReadOnlyKVStore) (*Roster, error) {
	obj, err := b.Get(db, rosterKey)
	if err != nil {
		return nil, errors.Wrap(err, "bucket lookup")
	}
	if obj == nil {
		return nil, nil
	}
	r, ok := obj.Value().(*Roster)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return r, nil
}

// SaveRoster persists the roster under the fixed key.
func (b RosterBucket) SaveRoster(db signet.KVStore, r *Roster) error {
	return b.Save(db, orm.NewSimpleObj(rosterKey, r))
}

// ProposalBucket is a type-safe wrapper around orm.Bucket. Proposal ids
// are dense and assigned in creation order (0, 1, 2, ...), so the bucket
// doubles as an arena addressed by position.
type ProposalBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewProposalBucket initializes a ProposalBucket with default name
func NewProposalBucket() ProposalBucket {
	b := orm.NewBucket(ProposalBucketName, new(Proposal))
	return ProposalBucket{
		Bucket: b,
		idSeq:  b.Sequence(SequenceName),
	}
}

// Create persists a new proposal and returns its zero based id.
func (b ProposalBucket) Create(db signet.KVStore, p *Proposal) (int64, error) {
	val, err := b.idSeq.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "cannot acquire id")
	}
	// The sequence starts at 1 but proposal ids are zero based.
	id := val - 1
	if err := b.Update(db, id, p); err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites the proposal stored under given id.
func (b ProposalBucket) Update(db signet.KVStore, id int64, p *Proposal) error {
	return b.Save(db, orm.NewSimpleObj(orm.EncodeSequence(id), p))
}

// GetProposal returns the proposal with given id or nil when it does not
// exist.
func (b ProposalBucket) GetProposal(db signet.ReadOnlyKVStore, id int64) (*Proposal, error) {
	if id < 0 {
		return nil, nil
	}
	obj, err := b.Get(db, orm.EncodeSequence(id))
	if err != nil {
		return nil, errors.Wrap(err, "bucket lookup")
	}
	if obj == nil {
		return nil, nil
	}
	p, ok := obj.Value().(*Proposal)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return p, nil
}

// Count returns the number of proposals created so far.
func (b ProposalBucket) Count(db signet.ReadOnlyKVStore) (int64, error) {
	val, _, err := b.idSeq.Latest(db)
	return val, err
}
