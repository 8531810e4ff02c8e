// Package store ties together the hash table (package hash), the typed
// value engine (package value/container) and the command registry into
// the single type every executor operates on: Store.
//
// Store is the single-node in-memory engine itself, executed exclusively
// by the dispatcher's one worker (package dispatcher) - not a client over
// a replicated or sharded backend. It is an explicit, constructable value
// rather than a process-wide singleton, so tests can stand up as many
// independent instances as they like.
package store
