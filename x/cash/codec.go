package cash

import "github.com/tendermint/go-amino"

var cdc = amino.NewCodec()

func init() {
	cdc.RegisterConcrete(&Account{}, "cash/account", nil)
}
