package hash

// initialTableSize is the smallest table size. Table size is always a
// power of two.
const initialTableSize = 16

// table is one of the Store's two hash-table slots: a fixed-size bucket
// array with chained entries. size is always a power of two; count is the
// number of live entries, kept in lockstep with the chain lengths.
type table struct {
	buckets []*entry
	size    uint32
	count   int
}

// newTable returns an empty table with the given size (must be a power of
// two).
func newTable(size uint32) *table {
	return &table{
		buckets: make([]*entry, size),
		size:    size,
	}
}

// bucketIndex maps a murmur2 hash to a bucket index for this table's size.
// size is a power of two so masking replaces the usual modulus.
func (t *table) bucketIndex(h uint32) uint32 {
	return h & (t.size - 1)
}

// find walks the chain at key's bucket, returning the entry and its
// predecessor (nil if it is the bucket head).
func (t *table) find(key string, h uint32) (e, prev *entry) {
	idx := t.bucketIndex(h)
	for e = t.buckets[idx]; e != nil; prev, e = e, e.next {
		if e.key == key {
			return e, prev
		}
	}
	return nil, nil
}

// insert links e at the head of its bucket's chain and increments count.
// Callers are responsible for ensuring key is not already present in this
// table.
func (t *table) insert(e *entry, h uint32) {
	idx := t.bucketIndex(h)
	e.next = t.buckets[idx]
	t.buckets[idx] = e
	t.count++
}

// remove deletes the entry with the given key from its bucket's chain.
// Returns the removed entry, or nil if key was absent.
func (t *table) remove(key string, h uint32) *entry {
	idx := t.bucketIndex(h)
	var prev *entry
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			if prev == nil {
				t.buckets[idx] = e.next
			} else {
				prev.next = e.next
			}
			e.next = nil
			t.count--
			return e
		}
		prev = e
	}
	return nil
}

// loadFactor is count/size.
func (t *table) loadFactor() float64 {
	return float64(t.count) / float64(t.size)
}
