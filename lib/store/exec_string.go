package store

import (
	"github.com/cch137/gokv/lib/command"
	"github.com/cch137/gokv/lib/value"
)

// execGet implements GET.
func execGet(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 1 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)

	v, ok := s.get(key.AsString())
	if !ok {
		return command.NewNullReply()
	}
	if v.Tag != value.TagString {
		return command.NewErrorReply(command.ErrWrongType)
	}
	return command.NewStringReply(v.Str)
}

// execSet implements SET. It always creates or overwrites,
// regardless of the previous tag - the old value (if any) is simply
// replaced, and Go's GC reclaims whatever it owned.
func execSet(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 2 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)
	val, _ := req.Arg(1)

	s.set(key.AsString(), value.NewString(val.AsString()))
	return command.NewBoolReply(true)
}

// execRename implements RENAME. Overwriting an existing `new`
// entry needs no explicit free in Go - set() simply drops the old
// *value.Value reference, and it becomes unreachable.
func execRename(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 2 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	oldKey, _ := req.Arg(0)
	newKey, _ := req.Arg(1)

	v, ok := s.get(oldKey.AsString())
	if !ok {
		return command.NewErrorReply(command.ErrNoSuchKey)
	}
	s.del(oldKey.AsString())
	s.set(newKey.AsString(), v)
	return command.NewBoolReply(true)
}

// execDel implements DEL, removing every listed key and
// returning the count actually removed.
func execDel(s *Store, req *command.Request) *command.Reply {
	if req.Len() == 0 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	var removed uint64
	for _, arg := range req.Args {
		if s.del(arg.AsString()) {
			removed++
		}
	}
	return command.NewUIntReply(removed)
}
