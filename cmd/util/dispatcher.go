package util

import (
	"github.com/cch137/gokv/lib/dispatcher"
	"github.com/cch137/gokv/lib/store"
)

// NewDispatcher builds a Dispatcher over a fresh Store configured from the
// currently bound flags/env (HashSeed, DBPath, LogLevel). The dispatcher is
// returned in its Uninitialised state; callers call Start themselves.
func NewDispatcher() *dispatcher.Dispatcher {
	s := store.New(store.Options{
		HashSeed:            HashSeed(),
		PersistenceFilepath: DBPath(),
	})
	d := dispatcher.New(s)
	d.SetLogLevel(LogLevel())
	return d
}
