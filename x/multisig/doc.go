/*
Package multisig implements a multi-signature transaction authorization
engine: a fixed roster of owners must jointly approve a proposed value
transfer before it is executed exactly once.

Two components cooperate. The Registry maintains the owner roster and
the confirmation threshold. The Ledger maintains proposals with their
per-owner confirmation sets and triggers execution as soon as quorum is
reached, within the same confirming call.

The engine never deletes a proposal: executed proposals persist as audit
records with their confirmation count frozen at the execution instant
and their confirmation set cleared.
*/
package multisig
