/*
Package signet defines the common interfaces that tie together the
multi-signature authorization engine and its hosting environment.

The engine itself lives in x/multisig and is reachable only through
synchronous, single-call-at-a-time dispatch: the host routes a Tx holding
a Msg to a Handler, which validates it during Check and applies it during
Deliver against a KVStore. State survives between calls because the host
owns the store; the engine owns only the semantics.

Money movement and event broadcast are collaborators, not engine state.
The engine requests transfers through an injected mover and announces
state changes through an Emitter.
*/
package signet
