// Package dispatcher owns the single worker goroutine that is the only
// caller ever allowed to touch a store.Store. Every Request, whatever
// goroutine submits it, is appended to a FIFO queue and executed strictly
// in submission order; Submit blocks its caller until the worker has
// produced a Reply.
//
// Between requests the worker also drives the store's maintenance tick
// (one incremental rehash step) and, when the queue runs dry, backs off
// with a growing sleep rather than spinning.
package dispatcher
