// Package hash implements the data store's hash table: open chaining with
// incremental two-table rehashing.
//
// A Table is a single array of chained buckets. A Store wraps two Tables
// (t0, t1) and drives an incremental rehash: while t1 is present, every
// lookup consults t1 first, every insert lands in t1, and one bucket of
// t0 is drained into t1 per call to Maintenance, starting from t0's last
// bucket. When the cursor runs past bucket 0, t0 is discarded and t1 takes
// its place.
//
// Hashing uses a seeded MurmurHash2; the seed is a constructor parameter
// so tests and callers can make table layout deterministic.
package hash
