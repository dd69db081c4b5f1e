package cash

import (
	"github.com/signet-labs/signet"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from the genesis file, with
// the address in hex.
type GenesisAccount struct {
	Address signet.Address `json:"address"`
	Balance int64          `json:"balance"`
}

// Initializer fulfils the Initializer interface to load initial account
// balances from genesis data.
type Initializer struct{}

var _ signet.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis and save it
// to the database.
func (*Initializer) FromGenesis(opts signet.Options, kv signet.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewAccountBucket()
	for _, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return err
		}
		if err := bucket.SaveAccount(kv, acct.Address, &Account{Balance: acct.Balance}); err != nil {
			return err
		}
	}
	return nil
}
