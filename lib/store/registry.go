package store

import "github.com/cch137/gokv/lib/command"

// Executor validates and runs one Request against s, returning the Reply
// to hand back to the caller: a function table in place of a per-command
// switch, one function per Action, looked up once in registry.
type Executor func(s *Store, req *command.Request) *command.Reply

// registry maps every Action to its Executor. Built once at package init
// rather than assembled per call.
var registry map[command.Action]Executor

func init() {
	registry = map[command.Action]Executor{
		command.ActionUnknown:           execUnknown,
		command.ActionDel:               execDel,
		command.ActionFlushall:          execFlushall,
		command.ActionGet:               execGet,
		command.ActionInfoDatasetMemory: execInfoDatasetMemory,
		command.ActionKeys:              execKeys,
		command.ActionLlen:              execLlen,
		command.ActionLpop:              execLpop,
		command.ActionLpush:             execLpush,
		command.ActionLrange:            execLrange,
		command.ActionRename:            execRename,
		command.ActionRpop:              execRpop,
		command.ActionRpush:             execRpush,
		command.ActionSave:              execSave,
		command.ActionSet:               execSet,
		command.ActionShutdown:          execShutdown,
		command.ActionStart:             execStart,
		command.ActionZadd:              execZadd,
		command.ActionZcard:             execZcard,
		command.ActionZcount:            execZcount,
		command.ActionZinterstore:       execZinterstore,
		command.ActionZrange:            execZrange,
		command.ActionZrangebyscore:     execZrangebyscore,
		command.ActionZrank:             execZrank,
		command.ActionZrem:              execZrem,
		command.ActionZremrangebyscore:  execZremrangebyscore,
		command.ActionZscore:            execZscore,
		command.ActionZunionstore:       execZunionstore,
	}
}

func execUnknown(_ *Store, _ *command.Request) *command.Reply {
	return command.NewErrorReply(command.ErrUnknownCommand)
}
