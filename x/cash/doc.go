/*
Package cash keeps per address balances and moves value between them.

It is a minimal accounting layer: one account per address, one integer
balance per account. The Controller exposes the funds operations and the
WalletMover adapts a fixed source wallet to the transfer interface the
proposal ledger executes against.
*/
package cash
