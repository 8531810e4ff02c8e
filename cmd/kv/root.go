// Package kv implements gokv's CLI verbs: the interactive repl, the
// metrics dump, and the one-shot commands that each load the snapshot,
// run a single command through the dispatcher, save, and exit.
package kv

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cch137/gokv/cmd/util"
	"github.com/cch137/gokv/lib/command"
)

// runOneShot starts a fresh dispatcher, submits a single request built
// from action and args, prints the reply, and stops the dispatcher -
// which saves the snapshot via the SHUTDOWN executor before exiting.
func runOneShot(action command.Action, args []string) error {
	d := util.NewDispatcher()
	if err := d.Start(); err != nil {
		return err
	}

	reqArgs := make([]command.Arg, len(args))
	for i, a := range args {
		reqArgs[i] = command.ArgStr(a)
	}

	reply := d.Submit(command.NewRequest(action, reqArgs...))
	d.Stop()

	printReply(reply)
	return nil
}

// printReply renders a Reply the way a small line-oriented client would:
// one line per scalar, one line per list element.
func printReply(r *command.Reply) {
	switch r.Tag {
	case command.ReplyNull:
		fmt.Println("(nil)")
	case command.ReplyError:
		fmt.Println(r.Str)
	case command.ReplyString:
		fmt.Println(r.Str)
	case command.ReplyList:
		if len(r.List) == 0 {
			fmt.Println("(empty list)")
			return
		}
		for i, elem := range r.List {
			fmt.Printf("%d) %s\n", i+1, elem)
		}
	case command.ReplyUInt:
		fmt.Println(r.UVal)
	case command.ReplyInt:
		fmt.Println(r.IVal)
	case command.ReplyBool:
		fmt.Println(r.BVal)
	case command.ReplyDouble:
		fmt.Println(strconv.FormatFloat(r.DVal, 'g', -1, 64))
	}
}

// verb returns a one-shot cobra.Command named use that submits action with
// its positional args, requiring at least minArgs of them.
func verb(use, short string, action command.Action, minArgs int) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(minArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOneShot(action, args)
		},
	}
}

// exactVerb is verb for commands whose argument count is fixed.
func exactVerb(use, short string, action command.Action, n int) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOneShot(action, args)
		},
	}
}

// KeyValueCommands is the full set of one-shot verbs, added directly under
// the root command.
var KeyValueCommands = []*cobra.Command{
	exactVerb("get KEY", "Reads the value for a key", command.ActionGet, 1),
	exactVerb("set KEY VALUE", "Sets the value for a key", command.ActionSet, 2),
	exactVerb("rename OLD NEW", "Renames a key", command.ActionRename, 2),
	verb("del KEY [KEY...]", "Deletes one or more keys", command.ActionDel, 1),
	exactVerb("keys PATTERN", "Lists keys matching a glob pattern", command.ActionKeys, 1),
	exactVerb("flushall", "Removes every key", command.ActionFlushall, 0),
	exactVerb("save", "Writes the snapshot file now", command.ActionSave, 0),
	exactVerb("info", "Reports estimated dataset memory usage", command.ActionInfoDatasetMemory, 0),

	verb("lpush KEY VAL [VAL...]", "Pushes values onto the head of a list", command.ActionLpush, 2),
	verb("rpush KEY VAL [VAL...]", "Pushes values onto the tail of a list", command.ActionRpush, 2),
	verb("lpop KEY [COUNT]", "Pops values off the head of a list", command.ActionLpop, 1),
	verb("rpop KEY [COUNT]", "Pops values off the tail of a list", command.ActionRpop, 1),
	exactVerb("llen KEY", "Reports the length of a list", command.ActionLlen, 1),
	exactVerb("lrange KEY START STOP", "Returns a clamped slice of a list", command.ActionLrange, 3),

	verb("zadd KEY SCORE MEMBER [SCORE MEMBER...]", "Adds or updates sorted-set members", command.ActionZadd, 3),
	exactVerb("zscore KEY MEMBER", "Reports a sorted-set member's score", command.ActionZscore, 2),
	exactVerb("zcard KEY", "Reports a sorted set's cardinality", command.ActionZcard, 1),
	exactVerb("zcount KEY MIN MININCL MAX MAXINCL", "Counts members within a score range", command.ActionZcount, 5),
	verb("zrange KEY START STOP [WITHSCORES]", "Returns members by rank range", command.ActionZrange, 3),
	verb("zrangebyscore KEY MIN MININCL MAX MAXINCL [WITHSCORES]", "Returns members by score range", command.ActionZrangebyscore, 5),
	verb("zrank KEY MEMBER [REVERSE]", "Reports a member's rank", command.ActionZrank, 2),
	exactVerb("zrem KEY MEMBER", "Removes a sorted-set member", command.ActionZrem, 2),
	exactVerb("zremrangebyscore KEY MIN MININCL MAX MAXINCL", "Removes members within a score range", command.ActionZremrangebyscore, 5),
	verb("zinterstore DEST NUMKEYS KEY [KEY...] [WEIGHTS ...] [AGGREGATE SUM|MIN|MAX]", "Stores the intersection of sorted sets", command.ActionZinterstore, 3),
	verb("zunionstore DEST NUMKEYS KEY [KEY...] [WEIGHTS ...] [AGGREGATE SUM|MIN|MAX]", "Stores the union of sorted sets", command.ActionZunionstore, 3),

	exactVerb("shutdown", "Saves the snapshot and reports success", command.ActionShutdown, 0),
}
