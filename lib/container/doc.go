// Package container holds the two primitive value types the store can hold
// besides a plain string: a doubly-linked List and a score-ordered
// SortedSet. Both types are unsynchronized; callers (the command executors)
// serialize access by only ever touching them from the single dispatcher
// worker.
package container
