package multisig

import "github.com/tendermint/go-amino"

// cdc serializes all models and messages of this package. The models are
// hand-written, so reflection based amino encoding replaces generated
// code.
var cdc = amino.NewCodec()

func init() {
	cdc.RegisterConcrete(&Roster{}, "multisig/roster", nil)
	cdc.RegisterConcrete(&Proposal{}, "multisig/proposal", nil)
	cdc.RegisterConcrete(&ProposeMsg{}, "multisig/msg/propose", nil)
	cdc.RegisterConcrete(&ConfirmMsg{}, "multisig/msg/confirm", nil)
	cdc.RegisterConcrete(&ExecuteMsg{}, "multisig/msg/execute", nil)
	cdc.RegisterConcrete(&AddOwnerMsg{}, "multisig/msg/add_owner", nil)
	cdc.RegisterConcrete(&RemoveOwnerMsg{}, "multisig/msg/remove_owner", nil)
}
