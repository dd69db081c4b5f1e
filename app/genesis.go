package app

import (
	"encoding/json"
	"os"

	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
)

// Genesis is the initial application state, loaded once on first start.
// Each extension looks up its own key in the options and parses the raw
// json as desired.
type Genesis struct {
	AppOptions signet.Options `json:"app_options"`
}

// LoadGenesis tries to load a given file into a Genesis struct
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrap(err, "loading genesis file")
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return gen, errors.Wrap(err, "unmarshaling genesis file")
	}
	return gen, nil
}

// ChainInitializers lets you initialize many extensions with one
// function
func ChainInitializers(inits ...signet.Initializer) signet.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []signet.Initializer
}

// FromGenesis will pass opts to all initializers in the list, aborting
// at the first error.
func (c chainInitializer) FromGenesis(opts signet.Options, kv signet.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
