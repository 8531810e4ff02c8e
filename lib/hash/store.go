package hash

import "github.com/cch137/gokv/lib/value"

// expandLoadFactor and contractLoadFactor are the sizing thresholds that
// trigger a rehash. contractMinSize guards against shrinking below the
// initial floor.
const (
	expandLoadFactor   = 0.7
	contractLoadFactor = 0.1
	contractMinSize    = initialTableSize
)

// Store is two hash-table slots, t0 and t1, with incremental rehashing
// between them. Exactly one of two states holds at any time: steady state
// (t1 is nil, rehashCursor is -1), or rehashing (t1 non-nil, rehashCursor
// in [0, t0.size)). It is not internally synchronized - every mutation is
// confined to the single dispatcher worker, so no locking happens inside
// Store or its tables.
type Store struct {
	t0, t1       *table
	rehashCursor int64
	seed         uint32
}

// NewStore returns an empty Store whose hashing is seeded with seed. A
// seed of zero is legitimate - callers that want a random seed should
// call GenerateSeed themselves; resolving that at the config layer, not
// here, keeps Store deterministic for tests.
func NewStore(seed uint32) *Store {
	return &Store{
		t0:           newTable(initialTableSize),
		rehashCursor: -1,
		seed:         seed,
	}
}

// rehashing reports whether a rehash is currently in progress.
func (s *Store) rehashing() bool {
	return s.t1 != nil
}

// Get returns the value stored for key. t1 is consulted before t0 when a
// rehash is in progress.
func (s *Store) Get(key string) (*value.Value, bool) {
	h := hashKey(key, s.seed)
	if s.rehashing() {
		if e, _ := s.t1.find(key, h); e != nil {
			return e.val, true
		}
	}
	if e, _ := s.t0.find(key, h); e != nil {
		return e.val, true
	}
	return nil, false
}

// Has reports whether key is present, without returning its value.
func (s *Store) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Set inserts or overwrites the value for key. New keys are written into
// t1 while a rehash is active, else into t0.
func (s *Store) Set(key string, v *value.Value) {
	h := hashKey(key, s.seed)

	if s.rehashing() {
		if e, _ := s.t1.find(key, h); e != nil {
			e.val = v
			return
		}
	}
	if e, _ := s.t0.find(key, h); e != nil {
		e.val = v
		return
	}

	target := s.t0
	if s.rehashing() {
		target = s.t1
	}
	target.insert(&entry{key: key, val: v}, h)
}

// Delete removes key from whichever table holds it. Returns false if key
// was absent.
func (s *Store) Delete(key string) bool {
	h := hashKey(key, s.seed)
	if s.rehashing() {
		if e := s.t1.remove(key, h); e != nil {
			return true
		}
	}
	return s.t0.remove(key, h) != nil
}

// Count returns the total number of live entries across both tables.
func (s *Store) Count() int {
	n := s.t0.count
	if s.rehashing() {
		n += s.t1.count
	}
	return n
}

// ForEach calls fn for every (key, value) pair across both tables. fn
// returning false stops iteration early. Traversal order is unspecified.
// It is safe to call mid-rehash: every live entry is in exactly one of the
// two tables at any instant, so the snapshotter, which only ever runs
// between worker steps, never observes a partial bucket.
func (s *Store) ForEach(fn func(key string, v *value.Value) bool) {
	for _, b := range s.t0.buckets {
		for e := b; e != nil; e = e.next {
			if !fn(e.key, e.val) {
				return
			}
		}
	}
	if s.rehashing() {
		for _, b := range s.t1.buckets {
			for e := b; e != nil; e = e.next {
				if !fn(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Flush atomically replaces both tables with a single fresh, empty t0 and
// resets the rehash cursor to idle - the FLUSHALL executor's primitive.
func (s *Store) Flush() {
	s.t0 = newTable(initialTableSize)
	s.t1 = nil
	s.rehashCursor = -1
}

// SizeBytes estimates the heap footprint of the table structures
// themselves (bucket arrays and chain links), excluding key strings and
// value payloads, which callers add via value.Value.SizeBytes and len(key).
func (s *Store) SizeBytes() int {
	const (
		bucketPtrSize = 8
		entryOverhead = 24 // key string header + next pointer
	)
	size := len(s.t0.buckets) * bucketPtrSize
	size += s.t0.count * entryOverhead
	if s.rehashing() {
		size += len(s.t1.buckets) * bucketPtrSize
		size += s.t1.count * entryOverhead
	}
	return size
}

// Maintenance performs at most one rehash step, the "maintenance tick":
// if a rehash is in progress, drain one more bucket of t0 into t1;
// otherwise check the sizing policy and, if the load factor crosses a
// threshold, start a new rehash. Reports whether it did anything, so
// callers (the dispatcher) can count rehash activity.
func (s *Store) Maintenance() bool {
	if s.rehashing() {
		s.step()
		return true
	}
	before := s.rehashing()
	s.maybeStartRehash()
	return s.rehashing() != before
}

// maybeStartRehash applies the sizing policy: expand at load factor >
// 0.7, contract at load factor < 0.1 (only once size has grown past the
// initial floor).
func (s *Store) maybeStartRehash() {
	lf := s.t0.loadFactor()
	switch {
	case lf > expandLoadFactor:
		s.beginRehash(s.t0.size * 2)
	case s.t0.size > contractMinSize && lf < contractLoadFactor:
		newSize := s.t0.size / 2
		if newSize < contractMinSize {
			newSize = contractMinSize
		}
		s.beginRehash(newSize)
	}
}

// beginRehash allocates t1 at newSize and points the cursor at t0's last
// bucket - the "Active(size-1)" state of the rehash-cursor state machine.
func (s *Store) beginRehash(newSize uint32) {
	s.t1 = newTable(newSize)
	s.rehashCursor = int64(s.t0.size) - 1
}

// step drains the bucket at rehashCursor from t0 into t1, then decrements
// the cursor. When the cursor runs past zero the rehash finishes: t0 is
// discarded and t1 takes its place.
func (s *Store) step() {
	if s.rehashCursor < 0 {
		return
	}

	idx := s.rehashCursor
	e := s.t0.buckets[idx]
	s.t0.buckets[idx] = nil
	for e != nil {
		next := e.next
		h := hashKey(e.key, s.seed)
		e.next = nil
		s.t1.insert(e, h)
		s.t0.count--
		e = next
	}

	s.rehashCursor--
	if s.rehashCursor < 0 {
		s.t0 = s.t1
		s.t1 = nil
	}
}
