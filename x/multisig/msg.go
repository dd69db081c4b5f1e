package multisig

import (
	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
)

const (
	pathProposeMsg     = "multisig/propose"
	pathConfirmMsg     = "multisig/confirm"
	pathExecuteMsg     = "multisig/execute"
	pathAddOwnerMsg    = "multisig/add_owner"
	pathRemoveOwnerMsg = "multisig/remove_owner"

	// To avoid burning CPU, this is the maximum size of an opaque
	// payload attached to a proposal.
	maxPayloadSize = 8192
)

// ProposeMsg requests opening a new proposal to transfer amount to
// destination, with an opaque payload bound into the fingerprint.
type ProposeMsg struct {
	Destination signet.Address
	Amount      int64
	Payload     []byte
}

var _ signet.Msg = (*ProposeMsg)(nil)

// Path fulfills signet.Msg interface to allow routing
func (ProposeMsg) Path() string {
	return pathProposeMsg
}

// Validate enforces destination and amount boundaries
func (m *ProposeMsg) Validate() error {
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if m.Amount < 0 {
		return errors.Wrapf(errors.ErrMsg, "negative amount: %d", m.Amount)
	}
	if len(m.Payload) > maxPayloadSize {
		return errors.Wrap(errors.ErrMsg, "payload too large")
	}
	return nil
}

func (m *ProposeMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ProposeMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}

// ConfirmMsg records the caller's approval of the referenced proposal.
type ConfirmMsg struct {
	TransactionID int64
}

var _ signet.Msg = (*ConfirmMsg)(nil)

// Path fulfills signet.Msg interface to allow routing
func (ConfirmMsg) Path() string {
	return pathConfirmMsg
}

func (m *ConfirmMsg) Validate() error {
	if m.TransactionID < 0 {
		return errors.Wrapf(errors.ErrMsg, "negative transaction id: %d", m.TransactionID)
	}
	return nil
}

func (m *ConfirmMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ConfirmMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}

// ExecuteMsg attempts execution of the referenced proposal, for example
// to retry after a failed transfer.
type ExecuteMsg struct {
	TransactionID int64
}

var _ signet.Msg = (*ExecuteMsg)(nil)

// Path fulfills signet.Msg interface to allow routing
func (ExecuteMsg) Path() string {
	return pathExecuteMsg
}

func (m *ExecuteMsg) Validate() error {
	if m.TransactionID < 0 {
		return errors.Wrapf(errors.ErrMsg, "negative transaction id: %d", m.TransactionID)
	}
	return nil
}

func (m *ExecuteMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ExecuteMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}

// AddOwnerMsg inserts an address into the owner roster.
type AddOwnerMsg struct {
	Owner signet.Address
}

var _ signet.Msg = (*AddOwnerMsg)(nil)

// Path fulfills signet.Msg interface to allow routing
func (AddOwnerMsg) Path() string {
	return pathAddOwnerMsg
}

func (m *AddOwnerMsg) Validate() error {
	return errors.Wrap(m.Owner.Validate(), "owner")
}

func (m *AddOwnerMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *AddOwnerMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}

// RemoveOwnerMsg removes an address from the owner roster.
type RemoveOwnerMsg struct {
	Owner signet.Address
}

var _ signet.Msg = (*RemoveOwnerMsg)(nil)

// Path fulfills signet.Msg interface to allow routing
func (RemoveOwnerMsg) Path() string {
	return pathRemoveOwnerMsg
}

func (m *RemoveOwnerMsg) Validate() error {
	return errors.Wrap(m.Owner.Validate(), "owner")
}

func (m *RemoveOwnerMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *RemoveOwnerMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}
