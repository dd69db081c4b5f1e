package cash

import (
	"math"

	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
)

// Controller exposes the funds operations over the account bucket.
type Controller struct {
	bucket AccountBucket
}

// NewController returns a controller over the default account bucket.
func NewController() Controller {
	return Controller{bucket: NewAccountBucket()}
}

// MoveCoins moves the given amount from src to dest. It fails when src
// holds less than amount. The destination account is created on demand.
// Moving zero is allowed and only ensures both accounts exist.
func (c Controller) MoveCoins(db signet.KVStore, src, dest signet.Address, amount int64) error {
	if amount < 0 {
		return errors.Wrapf(errors.ErrAmount, "negative amount: %d", amount)
	}

	sender, err := c.bucket.GetAccount(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "account %s", src)
	}
	if sender.Balance < amount {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds: %d < %d", sender.Balance, amount)
	}

	recipient, err := c.bucket.GetAccount(db, dest)
	if err != nil {
		return err
	}
	if recipient == nil {
		recipient = &Account{}
	}
	if recipient.Balance > math.MaxInt64-amount {
		return errors.Wrap(errors.ErrOverflow, "recipient balance")
	}

	sender.Balance -= amount
	recipient.Balance += amount

	if err := c.bucket.SaveAccount(db, src, sender); err != nil {
		return err
	}
	return c.bucket.SaveAccount(db, dest, recipient)
}

// IssueCoins adds the given amount of coins to the destination address,
// creating the account when needed.
func (c Controller) IssueCoins(db signet.KVStore, dest signet.Address, amount int64) error {
	if amount < 0 {
		return errors.Wrapf(errors.ErrAmount, "negative amount: %d", amount)
	}

	recipient, err := c.bucket.GetAccount(db, dest)
	if err != nil {
		return err
	}
	if recipient == nil {
		recipient = &Account{}
	}
	if recipient.Balance > math.MaxInt64-amount {
		return errors.Wrap(errors.ErrOverflow, "recipient balance")
	}
	recipient.Balance += amount

	return c.bucket.SaveAccount(db, dest, recipient)
}

// Balance returns the balance of given address. Addresses without an
// account hold zero.
func (c Controller) Balance(db signet.ReadOnlyKVStore, addr signet.Address) (int64, error) {
	acct, err := c.bucket.GetAccount(db, addr)
	if err != nil {
		return 0, err
	}
	if acct == nil {
		return 0, nil
	}
	return acct.Balance, nil
}

// WalletMover adapts a fixed source wallet to the transfer interface the
// proposal ledger executes against. All executed proposals spend from
// the shared wallet.
type WalletMover struct {
	controller Controller
	source     signet.Address
}

// NewWalletMover returns a mover spending from the source wallet.
func NewWalletMover(controller Controller, source signet.Address) WalletMover {
	return WalletMover{controller: controller, source: source}
}

// Move transfers amount from the shared wallet to destination.
func (m WalletMover) Move(db signet.KVStore, destination signet.Address, amount int64) error {
	return m.controller.MoveCoins(db, m.source, destination, amount)
}
