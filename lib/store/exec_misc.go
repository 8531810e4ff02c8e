package store

import (
	"github.com/cch137/gokv/lib/command"
	"github.com/cch137/gokv/lib/glob"
	"github.com/cch137/gokv/lib/value"
)

// execKeys implements KEYS. The returned order is whatever
// order ForEach walks the hash table's two generations in, which is
// unspecified and may change across a rehash - callers that need a stable
// ordering must sort client-side.
func execKeys(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 1 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	patternArg, _ := req.Arg(0)
	pattern := patternArg.AsString()

	var matched []string
	s.forEach(func(key string, _ *value.Value) bool {
		if glob.Match(key, pattern) {
			matched = append(matched, key)
		}
		return true
	})
	return command.NewListReply(matched)
}

// execFlushall implements FLUSHALL, unconditionally discarding
// every key.
func execFlushall(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 0 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	s.flush()
	return command.NewBoolReply(true)
}

// execSave implements SAVE, surfacing a write failure as an Error reply
// rather than silently succeeding.
func execSave(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 0 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	if err := s.save(); err != nil {
		return command.NewErrorReply("ERR " + err.Error())
	}
	return command.NewBoolReply(true)
}

// execStart implements START. It is a request-layer no-op - the
// dispatcher itself drives the Uninitialised->Loaded->Running transition
// before its worker goroutine ever dequeues a Request, so by the time
// START could reach this executor the store is already running. It exists
// so a client-issued START is acknowledged rather than rejected as
// unknown.
func execStart(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 0 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	return command.NewBoolReply(true)
}

// execShutdown implements SHUTDOWN, saving the dataset before
// the dispatcher retires its worker. The dispatcher is responsible for
// actually stopping the queue after this reply is delivered; this executor
// only performs the save half of the contract.
func execShutdown(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 0 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	if err := s.save(); err != nil {
		return command.NewErrorReply("ERR " + err.Error())
	}
	return command.NewBoolReply(true)
}

// execInfoDatasetMemory implements INFO_DATASET_MEMORY, reporting the
// estimated heap footprint of the whole dataset.
func execInfoDatasetMemory(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 0 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	return command.NewUIntReply(uint64(s.sizeBytes()))
}
