package cash

import (
	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
	"github.com/signet-labs/signet/orm"
)

// AccountBucketName is where we store the accounts
const AccountBucketName = "cash"

// Account is the balance of a single address.
type Account struct {
	Balance int64
}

var _ orm.Model = (*Account)(nil)

func (a *Account) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(a)
}

func (a *Account) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, a)
}

func (a *Account) Validate() error {
	if a.Balance < 0 {
		return errors.Wrapf(errors.ErrModel, "negative balance: %d", a.Balance)
	}
	return nil
}

// AccountBucket is a type-safe wrapper around orm.Bucket, keyed by the
// account owner address.
type AccountBucket struct {
	orm.Bucket
}

// NewAccountBucket initializes an AccountBucket with default name
func NewAccountBucket() AccountBucket {
	return AccountBucket{
		Bucket: orm.NewBucket(AccountBucketName, new(Account)),
	}
}

// GetAccount returns the account of given address, or nil when the
// address holds no account.
func (b AccountBucket) GetAccount(db signet.ReadOnlyKVStore, addr signet.Address) (*Account, error) {
	obj, err := b.Get(db, addr)
	if err != nil {
		return nil, errors.Wrap(err, "bucket lookup")
	}
	if obj == nil {
		return nil, nil
	}
	acct, ok := obj.Value().(*Account)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return acct, nil
}

// SaveAccount persists the account under the owner address.
func (b AccountBucket) SaveAccount(db signet.KVStore, addr signet.Address, acct *Account) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	return b.Save(db, orm.NewSimpleObj(addr, acct))
}
