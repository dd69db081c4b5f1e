/*
Package app assembles the pieces a host needs to serve the engine: a
path based message router, genesis loading and a store bound dispatcher
with panic isolation.
*/
package app
