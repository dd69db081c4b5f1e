package multisig

import (
	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
)

// Initializer fulfils the Initializer interface to load the first owner
// roster from genesis data.
type Initializer struct{}

var _ signet.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial roster info from genesis and save it in
// the database. A genesis without a "multisig" section is a noop.
func (*Initializer) FromGenesis(opts signet.Options, kv signet.KVStore) error {
	var conf struct {
		Owners    []signet.Address `json:"owners"`
		Threshold uint32           `json:"threshold"`
	}
	if err := opts.ReadOptions("multisig", &conf); err != nil {
		return err
	}
	if len(conf.Owners) == 0 && conf.Threshold == 0 {
		return nil
	}

	registry := NewRegistry(nil)
	if err := registry.Initialize(kv, conf.Owners, conf.Threshold); err != nil {
		return errors.Wrap(err, "cannot initialize roster")
	}
	return nil
}
