package signet

import "context"

// Context is just a lightweight alias. We pass context through the host,
// router and handlers; extensions may enrich it with their own keys, such
// as the signer set established by the host for the current call.
type Context = context.Context
