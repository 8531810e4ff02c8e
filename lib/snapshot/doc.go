// Package snapshot serialises and restores a hash.Store as a single JSON
// document: a flat object keyed by the original key, each value a
// {"type", "value"} object whose type is "string", "list" or "zset" and
// whose value is, respectively, a JSON string, a JSON array of strings, or
// a JSON array of {"member", "score"} objects.
//
// This package uses encoding/json directly rather than reaching for a
// third-party codec - see DESIGN.md for why no pack JSON library replaces
// it here.
package snapshot
