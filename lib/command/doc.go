// Package command defines the structured units the parser produces and the
// dispatcher carries: Action identifies the operation, Request carries its
// ordered, tagged arguments, and Reply carries the typed result. These are
// tagged wire-shaped types built for an in-process queue rather than a
// replicated log: no serialization is required, so Request and Reply are
// plain structs rather than byte-exact binary formats.
package command
