package multisig

import (
	"testing"

	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
	"github.com/signet-labs/signet/signettest"
	"github.com/signet-labs/signet/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLedger returns a ledger over a fresh store with given owners
// and threshold, together with the mover and emitter doubles it uses.
func newTestLedger(t *testing.T, threshold uint32, owners ...signet.Address) (signet.KVStore, Ledger, *signettest.Mover, *signettest.Emitter) {
	t.Helper()

	db := store.MemStore()
	emitter := &signettest.Emitter{}
	registry := NewRegistry(emitter)
	require.NoError(t, registry.Initialize(db, owners, threshold))

	mover := &signettest.Mover{}
	ledger := NewLedger(registry, mover, nil, emitter)
	return db, ledger, mover, emitter
}

func TestLedgerProposeAssignsDenseIDs(t *testing.T) {
	owner := signettest.RandAddress()
	db, ledger, mover, _ := newTestLedger(t, 1, owner)

	dest := signettest.RandAddress()
	for want := int64(0); want < 3; want++ {
		id, err := ledger.Propose(db, dest, 100+want, nil)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}

	count, err := ledger.ProposalCount(db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// Opening proposals must not touch funds.
	assert.Equal(t, 0, mover.MoveCallCount())
}

func TestLedgerProposeInitialState(t *testing.T) {
	owner := signettest.RandAddress()
	db, ledger, _, emitter := newTestLedger(t, 2, owner)

	dest := signettest.RandAddress()
	payload := []byte("call data")
	id, err := ledger.Propose(db, dest, 55, payload)
	require.NoError(t, err)

	p, err := ledger.Proposal(db, id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, dest, p.Destination)
	assert.Equal(t, int64(55), p.Amount)
	assert.Equal(t, payload, p.Payload)
	assert.Equal(t, SHA256Fingerprint(dest, 55, payload), p.Fingerprint)
	assert.False(t, p.Executed)
	assert.Empty(t, p.Confirmations)
	assert.Equal(t, uint32(0), p.ConfirmationCount)

	assert.Equal(t, []string{EventProposalCreated}, emitter.Types())
}

func TestLedgerConfirmBelowThreshold(t *testing.T) {
	owner1 := signettest.RandAddress()
	owner2 := signettest.RandAddress()
	db, ledger, mover, emitter := newTestLedger(t, 2, owner1, owner2)

	id, err := ledger.Propose(db, signettest.RandAddress(), 100, nil)
	require.NoError(t, err)

	require.NoError(t, ledger.Confirm(db, id, owner1))

	confirmations, err := ledger.Confirmations(db, id)
	require.NoError(t, err)
	assert.Equal(t, []signet.Address{owner1}, confirmations)

	confirmed, err := ledger.IsConfirmed(db, id)
	require.NoError(t, err)
	assert.False(t, confirmed)

	p, err := ledger.Proposal(db, id)
	require.NoError(t, err)
	assert.False(t, p.Executed)

	assert.Equal(t, 0, mover.MoveCallCount())
	assert.Equal(t, []string{EventProposalCreated, EventConfirmationRecorded}, emitter.Types())
}

func TestLedgerQuorumTriggersExecution(t *testing.T) {
	owner1 := signettest.RandAddress()
	owner2 := signettest.RandAddress()
	owner3 := signettest.RandAddress()
	db, ledger, mover, emitter := newTestLedger(t, 2, owner1, owner2, owner3)

	dest := signettest.RandAddress()
	id, err := ledger.Propose(db, dest, 100, nil)
	require.NoError(t, err)

	require.NoError(t, ledger.Confirm(db, id, owner1))
	// The second confirmation reaches quorum and executes within the
	// same call.
	require.NoError(t, ledger.Confirm(db, id, owner2))

	require.Equal(t, 1, mover.MoveCallCount())
	assert.Equal(t, signettest.Transfer{Destination: dest, Amount: 100}, mover.Moves()[0])

	p, err := ledger.Proposal(db, id)
	require.NoError(t, err)
	assert.True(t, p.Executed)
	assert.Equal(t, uint32(2), p.ConfirmationCount)
	assert.Empty(t, p.Confirmations)

	assert.Equal(t, []string{
		EventProposalCreated,
		EventConfirmationRecorded,
		EventConfirmationRecorded,
		EventTransactionExecuted,
	}, emitter.Types())
}

func TestLedgerDoubleConfirm(t *testing.T) {
	owner1 := signettest.RandAddress()
	owner2 := signettest.RandAddress()
	db, ledger, mover, _ := newTestLedger(t, 2, owner1, owner2)

	id, err := ledger.Propose(db, signettest.RandAddress(), 100, nil)
	require.NoError(t, err)

	require.NoError(t, ledger.Confirm(db, id, owner1))
	err = ledger.Confirm(db, id, owner1)
	require.True(t, ErrAlreadyConfirmed.Is(err), "unexpected error: %+v", err)

	// The rejected confirmation must leave the set unchanged.
	confirmations, err := ledger.Confirmations(db, id)
	require.NoError(t, err)
	assert.Equal(t, []signet.Address{owner1}, confirmations)
	assert.Equal(t, 0, mover.MoveCallCount())
}

func TestLedgerConfirmErrors(t *testing.T) {
	owner := signettest.RandAddress()
	stranger := signettest.RandAddress()

	cases := map[string]struct {
		prepare func(t *testing.T, db signet.KVStore, ledger Ledger) int64
		signer  signet.Address
		wantErr *errors.Error
	}{
		"unknown id": {
			prepare: func(t *testing.T, db signet.KVStore, ledger Ledger) int64 {
				return 123
			},
			signer:  owner,
			wantErr: ErrInvalidTransactionID,
		},
		"not an owner": {
			prepare: func(t *testing.T, db signet.KVStore, ledger Ledger) int64 {
				id, err := ledger.Propose(db, signettest.RandAddress(), 1, nil)
				require.NoError(t, err)
				return id
			},
			signer:  stranger,
			wantErr: errors.ErrUnauthorized,
		},
		"already executed": {
			prepare: func(t *testing.T, db signet.KVStore, ledger Ledger) int64 {
				id, err := ledger.Propose(db, signettest.RandAddress(), 1, nil)
				require.NoError(t, err)
				require.NoError(t, ledger.Confirm(db, id, owner))
				return id
			},
			signer:  owner,
			wantErr: ErrAlreadyExecuted,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db, ledger, _, _ := newTestLedger(t, 1, owner)
			id := tc.prepare(t, db, ledger)
			err := ledger.Confirm(db, id, tc.signer)
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
		})
	}
}

func TestLedgerExecuteBeforeQuorum(t *testing.T) {
	owner1 := signettest.RandAddress()
	owner2 := signettest.RandAddress()
	db, ledger, mover, _ := newTestLedger(t, 2, owner1, owner2)

	id, err := ledger.Propose(db, signettest.RandAddress(), 100, nil)
	require.NoError(t, err)
	require.NoError(t, ledger.Confirm(db, id, owner1))

	err = ledger.Execute(db, id)
	require.True(t, ErrNotEnoughConfirmations.Is(err), "unexpected error: %+v", err)

	// The failed attempt must be a noop.
	assert.Equal(t, 0, mover.MoveCallCount())
	p, err := ledger.Proposal(db, id)
	require.NoError(t, err)
	assert.False(t, p.Executed)
	assert.Equal(t, []signet.Address{owner1}, p.Confirmations)
}

func TestLedgerExecuteUnknownID(t *testing.T) {
	owner := signettest.RandAddress()
	db, ledger, _, _ := newTestLedger(t, 1, owner)

	err := ledger.Execute(db, 42)
	require.True(t, ErrInvalidTransactionID.Is(err), "unexpected error: %+v", err)
}

func TestLedgerTransferFailureKeepsConfirmations(t *testing.T) {
	owner1 := signettest.RandAddress()
	owner2 := signettest.RandAddress()
	db, ledger, mover, _ := newTestLedger(t, 2, owner1, owner2)

	id, err := ledger.Propose(db, signettest.RandAddress(), 100, nil)
	require.NoError(t, err)
	require.NoError(t, ledger.Confirm(db, id, owner1))

	// Quorum is reached but the transfer is rejected.
	mover.Err = errors.ErrAmount.New("insufficient funds")
	err = ledger.Confirm(db, id, owner2)
	require.True(t, ErrTransferFailed.Is(err), "unexpected error: %+v", err)
	require.Equal(t, 1, mover.MoveCallCount())

	// The triggering confirmation is kept so the execution can be
	// retried without confirming again.
	p, err := ledger.Proposal(db, id)
	require.NoError(t, err)
	assert.False(t, p.Executed)
	assert.Equal(t, []signet.Address{owner1, owner2}, p.Confirmations)

	mover.Err = nil
	require.NoError(t, ledger.Execute(db, id))
	require.Equal(t, 2, mover.MoveCallCount())

	p, err = ledger.Proposal(db, id)
	require.NoError(t, err)
	assert.True(t, p.Executed)
	assert.Equal(t, uint32(2), p.ConfirmationCount)
	assert.Empty(t, p.Confirmations)
}

func TestLedgerExecutesExactlyOnce(t *testing.T) {
	owner := signettest.RandAddress()
	db, ledger, mover, _ := newTestLedger(t, 1, owner)

	id, err := ledger.Propose(db, signettest.RandAddress(), 100, nil)
	require.NoError(t, err)
	require.NoError(t, ledger.Confirm(db, id, owner))
	require.Equal(t, 1, mover.MoveCallCount())

	err = ledger.Execute(db, id)
	require.True(t, ErrAlreadyExecuted.Is(err), "unexpected error: %+v", err)
	assert.Equal(t, 1, mover.MoveCallCount())
}

func TestLedgerUnreachableThreshold(t *testing.T) {
	owner := signettest.RandAddress()
	// A threshold above the owner count is allowed, such proposals can
	// never execute until more owners join.
	db, ledger, mover, _ := newTestLedger(t, 2, owner)

	id, err := ledger.Propose(db, signettest.RandAddress(), 100, nil)
	require.NoError(t, err)
	require.NoError(t, ledger.Confirm(db, id, owner))

	confirmed, err := ledger.IsConfirmed(db, id)
	require.NoError(t, err)
	assert.False(t, confirmed)
	assert.Equal(t, 0, mover.MoveCallCount())
}

func TestLedgerConfirmationOfRemovedOwnerIsKept(t *testing.T) {
	owner1 := signettest.RandAddress()
	owner2 := signettest.RandAddress()
	owner3 := signettest.RandAddress()
	db := store.MemStore()
	registry := NewRegistry(nil)
	require.NoError(t, registry.Initialize(db, []signet.Address{owner1, owner2, owner3}, 2))
	mover := &signettest.Mover{}
	ledger := NewLedger(registry, mover, nil, nil)

	id, err := ledger.Propose(db, signettest.RandAddress(), 100, nil)
	require.NoError(t, err)
	require.NoError(t, ledger.Confirm(db, id, owner1))

	// A recorded confirmation survives the owner's removal and still
	// counts towards quorum.
	require.NoError(t, registry.RemoveOwner(db, owner1))
	require.NoError(t, ledger.Confirm(db, id, owner2))

	p, err := ledger.Proposal(db, id)
	require.NoError(t, err)
	assert.True(t, p.Executed)
	assert.Equal(t, uint32(2), p.ConfirmationCount)
}

func TestLedgerReadsDefaultOnUnknownID(t *testing.T) {
	owner := signettest.RandAddress()
	db, ledger, _, _ := newTestLedger(t, 1, owner)

	p, err := ledger.Proposal(db, 7)
	require.NoError(t, err)
	assert.Nil(t, p)

	confirmations, err := ledger.Confirmations(db, 7)
	require.NoError(t, err)
	assert.Empty(t, confirmations)

	confirmed, err := ledger.IsConfirmed(db, 7)
	require.NoError(t, err)
	assert.False(t, confirmed)

	count, err := ledger.ProposalCount(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
