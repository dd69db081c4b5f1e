package multisig

import (
	"encoding/hex"
	"strconv"

	"github.com/signet-labs/signet"
)

// Event types emitted by this package. Events are emitted on success
// paths only and are not part of engine state.
const (
	EventProposalCreated      = "proposal_created"
	EventConfirmationRecorded = "confirmation_recorded"
	EventTransactionExecuted  = "transaction_executed"
	EventOwnerAdded           = "owner_added"
	EventOwnerRemoved         = "owner_removed"
)

func proposalCreatedEvent(id int64, p *Proposal) signet.Event {
	return signet.Event{
		Type: EventProposalCreated,
		Attributes: []signet.EventAttribute{
			signet.Attr("id", strconv.FormatInt(id, 10)),
			signet.Attr("fingerprint", hex.EncodeToString(p.Fingerprint)),
			signet.Attr("destination", p.Destination.String()),
			signet.Attr("amount", strconv.FormatInt(p.Amount, 10)),
			signet.Attr("payload", hex.EncodeToString(p.Payload)),
		},
	}
}

func confirmationRecordedEvent(id int64, confirmer signet.Address) signet.Event {
	return signet.Event{
		Type: EventConfirmationRecorded,
		Attributes: []signet.EventAttribute{
			signet.Attr("id", strconv.FormatInt(id, 10)),
			signet.Attr("owner", confirmer.String()),
		},
	}
}

func transactionExecutedEvent(id int64, destination signet.Address, amount int64) signet.Event {
	return signet.Event{
		Type: EventTransactionExecuted,
		Attributes: []signet.EventAttribute{
			signet.Attr("id", strconv.FormatInt(id, 10)),
			signet.Attr("destination", destination.String()),
			signet.Attr("amount", strconv.FormatInt(amount, 10)),
		},
	}
}

func ownerAddedEvent(owner signet.Address) signet.Event {
	return signet.Event{
		Type: EventOwnerAdded,
		Attributes: []signet.EventAttribute{
			signet.Attr("owner", owner.String()),
		},
	}
}

func ownerRemovedEvent(owner signet.Address) signet.Event {
	return signet.Event{
		Type: EventOwnerRemoved,
		Attributes: []signet.EventAttribute{
			signet.Attr("owner", owner.String()),
		},
	}
}
