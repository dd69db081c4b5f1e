package multisig

import "github.com/signet-labs/signet/errors"

// Error codes
// multisig takes 1030-1039
var (
	// ErrInvalidTransactionID is returned when the referenced proposal
	// does not exist.
	ErrInvalidTransactionID = errors.Register(1030, "invalid transaction id")

	// ErrAlreadyConfirmed is returned when an owner confirms the same
	// proposal twice.
	ErrAlreadyConfirmed = errors.Register(1031, "already confirmed")

	// ErrAlreadyExecuted is returned when execution is attempted on a
	// terminal proposal.
	ErrAlreadyExecuted = errors.Register(1032, "already executed")

	// ErrNotEnoughConfirmations is returned when execution is attempted
	// before quorum.
	ErrNotEnoughConfirmations = errors.Register(1033, "not enough confirmations")

	// ErrTransferFailed is returned when the transfer collaborator
	// declined or errored. The proposal stays pending and confirmations
	// recorded so far are kept.
	ErrTransferFailed = errors.Register(1034, "transfer failed")

	// ErrAlreadyOwner is returned when adding an address that is already
	// part of the roster.
	ErrAlreadyOwner = errors.Register(1035, "already an owner")

	// ErrNotOwner is returned when removing an address that is not part
	// of the roster.
	ErrNotOwner = errors.Register(1036, "not an owner")

	// ErrLastOwner is returned when removal would empty the roster.
	ErrLastOwner = errors.Register(1037, "cannot remove the last owner")
)
