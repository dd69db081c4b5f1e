package multisig

import (
	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
	"github.com/signet-labs/signet/orm"
	"github.com/signet-labs/signet/x"
)

const (
	proposeCost     int64 = 300
	confirmCost     int64 = 150
	executeCost     int64 = 150
	ownerChangeCost int64 = 100
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r signet.Registry, auth x.Authenticator, ledger Ledger, registry Registry) {
	r.Handle(pathProposeMsg, ProposeHandler{ledger: ledger})
	r.Handle(pathConfirmMsg, ConfirmHandler{auth: auth, ledger: ledger})
	r.Handle(pathExecuteMsg, ExecuteHandler{ledger: ledger})
	r.Handle(pathAddOwnerMsg, AddOwnerHandler{registry: registry})
	r.Handle(pathRemoveOwnerMsg, RemoveOwnerHandler{registry: registry})
}

// ProposeHandler opens proposals. There is deliberately no caller
// authorization on propose: any caller may propose, only owners can
// confirm.
type ProposeHandler struct {
	ledger Ledger
}

var _ signet.Handler = ProposeHandler{}

func (h ProposeHandler) Check(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.CheckResult, error) {
	var res signet.CheckResult
	if _, err := h.validate(tx); err != nil {
		return res, err
	}
	res.GasAllocated = proposeCost
	return res, nil
}

func (h ProposeHandler) Deliver(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.DeliverResult, error) {
	var res signet.DeliverResult
	msg, err := h.validate(tx)
	if err != nil {
		return res, err
	}

	id, err := h.ledger.Propose(db, msg.Destination, msg.Amount, msg.Payload)
	if err != nil {
		return res, err
	}

	res.Data = orm.EncodeSequence(id)
	return res, nil
}

func (h ProposeHandler) validate(tx signet.Tx) (*ProposeMsg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	proposeMsg, ok := msg.(*ProposeMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "invalid type: %T", msg)
	}
	if err := proposeMsg.Validate(); err != nil {
		return nil, err
	}
	return proposeMsg, nil
}

// ConfirmHandler records an approval by the main signer of the call.
type ConfirmHandler struct {
	auth   x.Authenticator
	ledger Ledger
}

var _ signet.Handler = ConfirmHandler{}

func (h ConfirmHandler) Check(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.CheckResult, error) {
	var res signet.CheckResult
	if _, _, err := h.validate(ctx, tx); err != nil {
		return res, err
	}
	res.GasAllocated = confirmCost
	return res, nil
}

func (h ConfirmHandler) Deliver(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.DeliverResult, error) {
	var res signet.DeliverResult
	msg, confirmer, err := h.validate(ctx, tx)
	if err != nil {
		return res, err
	}
	if err := h.ledger.Confirm(db, msg.TransactionID, confirmer); err != nil {
		return res, err
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver
func (h ConfirmHandler) validate(ctx signet.Context, tx signet.Tx) (*ConfirmMsg, signet.Address, error) {
	confirmer := x.MainSigner(ctx, h.auth)
	if confirmer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, err
	}
	confirmMsg, ok := msg.(*ConfirmMsg)
	if !ok {
		return nil, nil, errors.Wrapf(errors.ErrMsg, "invalid type: %T", msg)
	}
	if err := confirmMsg.Validate(); err != nil {
		return nil, nil, err
	}
	return confirmMsg, confirmer, nil
}

// ExecuteHandler retries execution of a pending proposal. Quorum is
// still verified by the ledger, so no caller authorization is required.
type ExecuteHandler struct {
	ledger Ledger
}

var _ signet.Handler = ExecuteHandler{}

func (h ExecuteHandler) Check(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.CheckResult, error) {
	var res signet.CheckResult
	if _, err := h.validate(tx); err != nil {
		return res, err
	}
	res.GasAllocated = executeCost
	return res, nil
}

func (h ExecuteHandler) Deliver(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.DeliverResult, error) {
	var res signet.DeliverResult
	msg, err := h.validate(tx)
	if err != nil {
		return res, err
	}
	if err := h.ledger.Execute(db, msg.TransactionID); err != nil {
		return res, err
	}
	return res, nil
}

func (h ExecuteHandler) validate(tx signet.Tx) (*ExecuteMsg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	executeMsg, ok := msg.(*ExecuteMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "invalid type: %T", msg)
	}
	if err := executeMsg.Validate(); err != nil {
		return nil, err
	}
	return executeMsg, nil
}

// AddOwnerHandler grows the roster. Mirroring the reference behavior
// there is no caller authorization on roster changes.
type AddOwnerHandler struct {
	registry Registry
}

var _ signet.Handler = AddOwnerHandler{}

func (h AddOwnerHandler) Check(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.CheckResult, error) {
	var res signet.CheckResult
	if _, err := h.validate(tx); err != nil {
		return res, err
	}
	res.GasAllocated = ownerChangeCost
	return res, nil
}

func (h AddOwnerHandler) Deliver(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.DeliverResult, error) {
	var res signet.DeliverResult
	msg, err := h.validate(tx)
	if err != nil {
		return res, err
	}
	if err := h.registry.AddOwner(db, msg.Owner); err != nil {
		return res, err
	}
	return res, nil
}

func (h AddOwnerHandler) validate(tx signet.Tx) (*AddOwnerMsg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	addMsg, ok := msg.(*AddOwnerMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "invalid type: %T", msg)
	}
	if err := addMsg.Validate(); err != nil {
		return nil, err
	}
	return addMsg, nil
}

// RemoveOwnerHandler shrinks the roster, never below one owner.
type RemoveOwnerHandler struct {
	registry Registry
}

var _ signet.Handler = RemoveOwnerHandler{}

func (h RemoveOwnerHandler) Check(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.CheckResult, error) {
	var res signet.CheckResult
	if _, err := h.validate(tx); err != nil {
		return res, err
	}
	res.GasAllocated = ownerChangeCost
	return res, nil
}

func (h RemoveOwnerHandler) Deliver(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.DeliverResult, error) {
	var res signet.DeliverResult
	msg, err := h.validate(tx)
	if err != nil {
		return res, err
	}
	if err := h.registry.RemoveOwner(db, msg.Owner); err != nil {
		return res, err
	}
	return res, nil
}

func (h RemoveOwnerHandler) validate(tx signet.Tx) (*RemoveOwnerMsg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	removeMsg, ok := msg.(*RemoveOwnerMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "invalid type: %T", msg)
	}
	if err := removeMsg.Validate(); err != nil {
		return nil, err
	}
	return removeMsg, nil
}
