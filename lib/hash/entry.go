package hash

import "github.com/cch137/gokv/lib/value"

// entry is one bucket-chain element: a key, its current value, and the
// link to the next entry in the same bucket. An entry belongs to exactly
// one bucket of exactly one table at a time.
type entry struct {
	key  string
	val  *value.Value
	next *entry
}
