package store

import (
	"github.com/cch137/gokv/lib/command"
	"github.com/cch137/gokv/lib/hash"
	"github.com/cch137/gokv/lib/snapshot"
	"github.com/cch137/gokv/lib/value"
)

// Store is the whole in-memory dataset plus the persistence path that
// SAVE, SHUTDOWN and Load use. It is not safe for concurrent use; the
// dispatcher is the only caller that ever touches it.
type Store struct {
	data *hash.Store
	path string
}

// Options configures a new Store. A zero HashSeed means "pick a random
// seed" (hash.GenerateSeed) - resolving that here, rather than inside
// package hash, keeps
// hash.Store itself deterministic for tests.
type Options struct {
	HashSeed            uint32
	PersistenceFilepath string
}

// DefaultPersistenceFilepath is the default snapshot path.
const DefaultPersistenceFilepath = "db.json"

// New returns an empty Store configured per opts.
func New(opts Options) *Store {
	seed := opts.HashSeed
	if seed == 0 {
		seed = hash.GenerateSeed()
	}
	path := opts.PersistenceFilepath
	if path == "" {
		path = DefaultPersistenceFilepath
	}
	return &Store{
		data: hash.NewStore(seed),
		path: path,
	}
}

// Maintenance performs at most one rehash step - the "maintenance tick"
// the dispatcher calls between request batches. Reports whether a rehash
// step actually ran, for the dispatcher's metrics.
func (s *Store) Maintenance() bool {
	return s.data.Maintenance()
}

// Count returns the number of live keys.
func (s *Store) Count() int {
	return s.data.Count()
}

// get/set/del/has/forEach/flush are the primitives executors compose;
// they exist so executor files don't reach into package hash directly,
// keeping Store the single seam between the command layer and the data
// layer.

func (s *Store) get(key string) (*value.Value, bool) {
	return s.data.Get(key)
}

func (s *Store) set(key string, v *value.Value) {
	s.data.Set(key, v)
}

func (s *Store) del(key string) bool {
	return s.data.Delete(key)
}

func (s *Store) forEach(fn func(key string, v *value.Value) bool) {
	s.data.ForEach(fn)
}

func (s *Store) flush() {
	s.data.Flush()
}

// sizeBytes implements INFO_DATASET_MEMORY: the hash table's own
// structural overhead plus every key and value's estimated footprint.
func (s *Store) sizeBytes() int {
	total := s.data.SizeBytes()
	s.data.ForEach(func(key string, v *value.Value) bool {
		total += len(key) + v.SizeBytes()
		return true
	})
	return total
}

// save writes a snapshot to s.path.
func (s *Store) save() error {
	return snapshot.Save(s.path, s.data)
}

// load restores a snapshot from s.path. A missing file is not an error.
func (s *Store) load() error {
	return snapshot.Load(s.path, s.data)
}

// Execute routes req to its registered executor and returns the reply.
// Every Action is registered, including ActionUnknown, so this never
// returns nil.
func (s *Store) Execute(req *command.Request) *command.Reply {
	exec, ok := registry[req.Action]
	if !ok {
		return command.NewErrorReply(command.ErrUnknownCommand)
	}
	return exec(s, req)
}

// Load restores the store from its configured persistence file. It is
// exported (unlike the store executors) because the process that owns a
// Store calls this once at startup, before the dispatcher's worker starts.
func (s *Store) Load() error {
	return s.load()
}
