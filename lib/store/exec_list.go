package store

import (
	"github.com/cch137/gokv/lib/command"
	"github.com/cch137/gokv/lib/value"
)

// getOrCreateList returns the list at key, creating an empty one if key
// is absent. Returns ok=false (WRONGTYPE) if key holds a non-list value.
func (s *Store) getOrCreateList(key string) (v *value.Value, ok bool) {
	v, found := s.get(key)
	if !found {
		v = value.NewList()
		s.set(key, v)
		return v, true
	}
	if v.Tag != value.TagList {
		return nil, false
	}
	return v, true
}

// execLpush implements LPUSH. Pushing each argument in order to
// the head naturally leaves the list in reverse-of-input order at the
// head.
func execLpush(s *Store, req *command.Request) *command.Reply {
	if req.Len() < 2 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)
	v, ok := s.getOrCreateList(key.AsString())
	if !ok {
		return command.NewErrorReply(command.ErrWrongType)
	}
	for _, arg := range req.Args[1:] {
		v.List.PushLeft(arg.AsString())
	}
	return command.NewUIntReply(uint64(v.List.Len()))
}

// execRpush implements RPUSH.
func execRpush(s *Store, req *command.Request) *command.Reply {
	if req.Len() < 2 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)
	v, ok := s.getOrCreateList(key.AsString())
	if !ok {
		return command.NewErrorReply(command.ErrWrongType)
	}
	for _, arg := range req.Args[1:] {
		v.List.PushRight(arg.AsString())
	}
	return command.NewUIntReply(uint64(v.List.Len()))
}

// execLpop implements LPOP  - default count 1, Null on a
// missing key, a freshly built list of the detached elements otherwise.
func execLpop(s *Store, req *command.Request) *command.Reply {
	return execPop(s, req, false)
}

// execRpop implements RPOP.
func execRpop(s *Store, req *command.Request) *command.Reply {
	return execPop(s, req, true)
}

func execPop(s *Store, req *command.Request, fromRight bool) *command.Reply {
	if req.Len() < 1 || req.Len() > 2 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)

	count := uint64(1)
	if req.Len() == 2 {
		cntArg, _ := req.Arg(1)
		v, ok := cntArg.AsUint()
		if !ok {
			return command.NewErrorReply(command.ErrWrongArguments)
		}
		count = v
	}

	v, found := s.get(key.AsString())
	if !found {
		return command.NewNullReply()
	}
	if v.Tag != value.TagList {
		return command.NewErrorReply(command.ErrWrongType)
	}

	popped := make([]string, 0, count)
	for i := uint64(0); i < count; i++ {
		var (
			elem string
			ok   bool
		)
		if fromRight {
			elem, ok = v.List.PopRight()
		} else {
			elem, ok = v.List.PopLeft()
		}
		if !ok {
			break
		}
		popped = append(popped, elem)
	}
	return command.NewListReply(popped)
}

// execLlen implements LLEN.
func execLlen(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 1 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)

	v, found := s.get(key.AsString())
	if !found {
		return command.NewUIntReply(0)
	}
	if v.Tag != value.TagList {
		return command.NewErrorReply(command.ErrWrongType)
	}
	return command.NewUIntReply(uint64(v.List.Len()))
}

// execLrange implements LRANGE. start/stop are coerced via Arg.AsUint, so
// a negative literal like "-1" fails coercion and yields ERR wrong
// arguments rather than wrapping around the list.
func execLrange(s *Store, req *command.Request) *command.Reply {
	if req.Len() != 3 {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	key, _ := req.Arg(0)
	startArg, _ := req.Arg(1)
	stopArg, _ := req.Arg(2)

	start, ok := startArg.AsUint()
	if !ok {
		return command.NewErrorReply(command.ErrWrongArguments)
	}
	stop, ok := stopArg.AsUint()
	if !ok {
		return command.NewErrorReply(command.ErrWrongArguments)
	}

	v, found := s.get(key.AsString())
	if !found {
		return command.NewListReply(nil)
	}
	if v.Tag != value.TagList {
		return command.NewErrorReply(command.ErrWrongType)
	}
	return command.NewListReply(v.List.Range(int(start), int(stop)))
}
