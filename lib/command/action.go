package command

// Action identifies which executor a Request is routed to.
type Action uint8

const (
	ActionUnknown Action = iota // UNKNOWN_COMMAND: parser could not resolve the action token
	ActionDel
	ActionFlushall
	ActionGet
	ActionInfoDatasetMemory
	ActionKeys
	ActionLlen
	ActionLpop
	ActionLpush
	ActionLrange
	ActionRename
	ActionRpop
	ActionRpush
	ActionSave
	ActionSet
	ActionShutdown
	ActionStart
	ActionZadd
	ActionZcard
	ActionZcount
	ActionZinterstore
	ActionZrange
	ActionZrangebyscore
	ActionZrank
	ActionZrem
	ActionZremrangebyscore
	ActionZscore
	ActionZunionstore
)

// actionNames maps every Action except ActionUnknown to its wire name -
// the first token of a command line.
var actionNames = map[Action]string{
	ActionDel:               "DEL",
	ActionFlushall:          "FLUSHALL",
	ActionGet:               "GET",
	ActionInfoDatasetMemory: "INFO_DATASET_MEMORY",
	ActionKeys:              "KEYS",
	ActionLlen:              "LLEN",
	ActionLpop:              "LPOP",
	ActionLpush:             "LPUSH",
	ActionLrange:            "LRANGE",
	ActionRename:            "RENAME",
	ActionRpop:              "RPOP",
	ActionRpush:             "RPUSH",
	ActionSave:              "SAVE",
	ActionSet:               "SET",
	ActionShutdown:          "SHUTDOWN",
	ActionStart:             "START",
	ActionZadd:              "ZADD",
	ActionZcard:             "ZCARD",
	ActionZcount:            "ZCOUNT",
	ActionZinterstore:       "ZINTERSTORE",
	ActionZrange:            "ZRANGE",
	ActionZrangebyscore:     "ZRANGEBYSCORE",
	ActionZrank:             "ZRANK",
	ActionZrem:              "ZREM",
	ActionZremrangebyscore:  "ZREMRANGEBYSCORE",
	ActionZscore:            "ZSCORE",
	ActionZunionstore:       "ZUNIONSTORE",
}

// nameToAction is the reverse of actionNames, built once at init for the
// parser's case-insensitive action lookup.
var nameToAction map[string]Action

func init() {
	nameToAction = make(map[string]Action, len(actionNames))
	for a, name := range actionNames {
		nameToAction[name] = a
	}
}

// String returns the wire name of a, or "UNKNOWN_COMMAND" for
// ActionUnknown and any value outside the defined range.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "UNKNOWN_COMMAND"
}

// LookupAction resolves a case-insensitive action token to an Action.
// Unknown tokens resolve to ActionUnknown: the parser never fails on an
// unrecognized action, it defers the error to the executor.
func LookupAction(token string) Action {
	if a, ok := nameToAction[upperASCII(token)]; ok {
		return a
	}
	return ActionUnknown
}

// upperASCII uppercases ASCII letters only, avoiding a dependency on
// unicode case folding for what is always an ASCII command keyword.
func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
