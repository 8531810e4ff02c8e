package store

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/cch137/gokv/lib/command"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return New(Options{HashSeed: 1, PersistenceFilepath: filepath.Join(dir, "db.json")})
}

func req(action command.Action, args ...string) *command.Request {
	tagged := make([]command.Arg, len(args))
	for i, a := range args {
		tagged[i] = command.ArgStr(a)
	}
	return command.NewRequest(action, tagged...)
}

func mustOk(t *testing.T, r *command.Reply) *command.Reply {
	t.Helper()
	if !r.Ok {
		t.Fatalf("reply not ok: %s", r.Str)
	}
	return r
}

// Scenario 1: SET author cch; SET author cch137; GET author.
func TestScenarioStringOverwrite(t *testing.T) {
	s := newTestStore(t)
	mustOk(t, s.Execute(req(command.ActionSet, "author", "cch")))
	mustOk(t, s.Execute(req(command.ActionSet, "author", "cch137")))
	r := mustOk(t, s.Execute(req(command.ActionGet, "author")))
	if r.Tag != command.ReplyString || r.Str != "cch137" {
		t.Fatalf("GET author = %+v, want String(cch137)", r)
	}
}

// SET k v twice must leave the store in the same observable state as one SET.
func TestSetIdempotence(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)
	mustOk(t, a.Execute(req(command.ActionSet, "k", "v")))
	mustOk(t, b.Execute(req(command.ActionSet, "k", "v")))
	mustOk(t, b.Execute(req(command.ActionSet, "k", "v")))
	ra := mustOk(t, a.Execute(req(command.ActionGet, "k")))
	rb := mustOk(t, b.Execute(req(command.ActionGet, "k")))
	if ra.Str != rb.Str {
		t.Fatalf("a.GET = %q, b.GET = %q, want equal", ra.Str, rb.Str)
	}
}

// Scenario 2: list push/pop counts and lengths.
func TestScenarioListPushPop(t *testing.T) {
	s := newTestStore(t)
	r := mustOk(t, s.Execute(req(command.ActionRpush, "list1", "a", "b", "c", "d", "e", "f", "g")))
	if r.UVal != 7 {
		t.Fatalf("RPUSH count = %d, want 7", r.UVal)
	}
	r = mustOk(t, s.Execute(req(command.ActionLpush, "list2", "x", "y", "z")))
	if r.UVal != 3 {
		t.Fatalf("LPUSH count = %d, want 3", r.UVal)
	}
	r = mustOk(t, s.Execute(req(command.ActionRpop, "list1", "2")))
	if len(r.List) != 2 || r.List[0] != "g" || r.List[1] != "f" {
		t.Fatalf("RPOP list1 2 = %v, want [g f]", r.List)
	}
	r = mustOk(t, s.Execute(req(command.ActionLpop, "list2", "1")))
	if len(r.List) != 1 || r.List[0] != "z" {
		t.Fatalf("LPOP list2 1 = %v, want [z]", r.List)
	}
	r = mustOk(t, s.Execute(req(command.ActionLlen, "list1")))
	if r.UVal != 5 {
		t.Fatalf("LLEN list1 = %d, want 5", r.UVal)
	}
	r = mustOk(t, s.Execute(req(command.ActionLlen, "list2")))
	if r.UVal != 2 {
		t.Fatalf("LLEN list2 = %d, want 2", r.UVal)
	}
}

// RPUSH k v; RPOP k 1 returns v and restores the list - and symmetrically
// for the L-variants.
func TestListPushPopRestoresList(t *testing.T) {
	s := newTestStore(t)
	mustOk(t, s.Execute(req(command.ActionRpush, "k", "v")))
	r := mustOk(t, s.Execute(req(command.ActionRpop, "k")))
	if len(r.List) != 1 || r.List[0] != "v" {
		t.Fatalf("RPOP = %v, want [v]", r.List)
	}
	r = mustOk(t, s.Execute(req(command.ActionLlen, "k")))
	if r.UVal != 0 {
		t.Fatalf("LLEN after draining = %d, want 0", r.UVal)
	}

	mustOk(t, s.Execute(req(command.ActionLpush, "k2", "v")))
	r = mustOk(t, s.Execute(req(command.ActionLpop, "k2")))
	if len(r.List) != 1 || r.List[0] != "v" {
		t.Fatalf("LPOP = %v, want [v]", r.List)
	}
}

// Scenario 3 / LRANGE clamping: LRANGE k 0 length-1 returns the whole list,
// and start > stop returns empty.
func TestLRangeClamping(t *testing.T) {
	s := newTestStore(t)
	mustOk(t, s.Execute(req(command.ActionRpush, "list1", "a", "b", "c", "d", "e", "f", "g")))
	r := mustOk(t, s.Execute(req(command.ActionLrange, "list1", "0", "6")))
	want := []string{"a", "b", "c", "d", "e", "f", "g"}
	if len(r.List) != len(want) {
		t.Fatalf("LRANGE 0 6 = %v, want %v", r.List, want)
	}
	for i := range want {
		if r.List[i] != want[i] {
			t.Fatalf("LRANGE 0 6 = %v, want %v", r.List, want)
		}
	}

	r = mustOk(t, s.Execute(req(command.ActionLrange, "list1", "5", "2")))
	if len(r.List) != 0 {
		t.Fatalf("LRANGE 5 2 = %v, want empty", r.List)
	}
}

// Negative LRANGE indices are unsupported: a negative literal fails
// Arg.AsUint coercion and yields ERR wrong arguments rather than silently
// wrapping.
func TestLRangeNegativeIndexRejected(t *testing.T) {
	s := newTestStore(t)
	mustOk(t, s.Execute(req(command.ActionRpush, "list1", "a", "b", "c")))
	r := s.Execute(req(command.ActionLrange, "list1", "0", "-1"))
	if r.Ok {
		t.Fatalf("LRANGE with a negative stop succeeded, want ERR wrong arguments")
	}
	if r.Str != command.ErrWrongArguments {
		t.Fatalf("error = %q, want %q", r.Str, command.ErrWrongArguments)
	}
}

// Scenario 4: ZCOUNT over a five-member sorted set with inclusive and
// exclusive bounds.
func TestScenarioZCount(t *testing.T) {
	s := newTestStore(t)
	for i, m := range []string{"a", "b", "c", "d", "e"} {
		mustOk(t, s.Execute(req(command.ActionZadd, "z", strconv.Itoa(i + 1), m)))
	}
	r := mustOk(t, s.Execute(req(command.ActionZcount, "z", "1", "true", "5", "true")))
	if r.UVal != 5 {
		t.Fatalf("ZCOUNT inclusive = %d, want 5", r.UVal)
	}
	r = mustOk(t, s.Execute(req(command.ActionZcount, "z", "1", "false", "5", "false")))
	if r.UVal != 3 {
		t.Fatalf("ZCOUNT exclusive = %d, want 3", r.UVal)
	}
}

// Scenario 5: ZINTERSTORE with default (SUM) aggregation.
func TestScenarioZInterstore(t *testing.T) {
	s := newTestStore(t)
	mustOk(t, s.Execute(req(command.ActionZadd, "z1", "1", "a", "2", "b", "3", "c")))
	mustOk(t, s.Execute(req(command.ActionZadd, "z2", "3", "c", "4", "b", "5", "d")))

	r := mustOk(t, s.Execute(req(command.ActionZinterstore, "dest", "2", "z1", "z2")))
	if r.UVal != 2 {
		t.Fatalf("ZINTERSTORE card = %d, want 2", r.UVal)
	}
	rb := mustOk(t, s.Execute(req(command.ActionZscore, "dest", "b")))
	if rb.DVal != 6 {
		t.Fatalf("score(b) = %v, want 6", rb.DVal)
	}
	rc := mustOk(t, s.Execute(req(command.ActionZscore, "dest", "c")))
	if rc.DVal != 6 {
		t.Fatalf("score(c) = %v, want 6", rc.DVal)
	}
}

// Scenario 6: ZUNIONSTORE with default (SUM) aggregation.
func TestScenarioZUnionstore(t *testing.T) {
	s := newTestStore(t)
	mustOk(t, s.Execute(req(command.ActionZadd, "z1", "1", "a", "2", "b")))
	mustOk(t, s.Execute(req(command.ActionZadd, "z2", "3", "b", "4", "c")))

	r := mustOk(t, s.Execute(req(command.ActionZunionstore, "dest", "2", "z1", "z2")))
	if r.UVal != 3 {
		t.Fatalf("ZUNIONSTORE card = %d, want 3", r.UVal)
	}
	ra := mustOk(t, s.Execute(req(command.ActionZscore, "dest", "a")))
	if ra.DVal != 1 {
		t.Fatalf("score(a) = %v, want 1", ra.DVal)
	}
	rb := mustOk(t, s.Execute(req(command.ActionZscore, "dest", "b")))
	if rb.DVal != 5 {
		t.Fatalf("score(b) = %v, want 5", rb.DVal)
	}
	rc := mustOk(t, s.Execute(req(command.ActionZscore, "dest", "c")))
	if rc.DVal != 4 {
		t.Fatalf("score(c) = %v, want 4", rc.DVal)
	}
}

// Scenario 7: KEYS with a glob pattern over a mix of matching and
// non-matching keys.
func TestScenarioKeys(t *testing.T) {
	s := newTestStore(t)
	mustOk(t, s.Execute(req(command.ActionSet, "user:1", "a")))
	mustOk(t, s.Execute(req(command.ActionSet, "user:2", "b")))
	mustOk(t, s.Execute(req(command.ActionSet, "admin:x", "c")))

	r := mustOk(t, s.Execute(req(command.ActionKeys, "user:*")))
	if len(r.List) != 2 {
		t.Fatalf("KEYS user:* = %v, want 2 matches", r.List)
	}
	seen := map[string]bool{}
	for _, k := range r.List {
		seen[k] = true
	}
	if !seen["user:1"] || !seen["user:2"] {
		t.Fatalf("KEYS user:* = %v, want user:1 and user:2", r.List)
	}
}

func TestWrongTypeError(t *testing.T) {
	s := newTestStore(t)
	mustOk(t, s.Execute(req(command.ActionSet, "k", "v")))
	r := s.Execute(req(command.ActionLpush, "k", "x"))
	if r.Ok || r.Str != command.ErrWrongType {
		t.Fatalf("LPUSH on a string key = %+v, want WRONGTYPE", r)
	}
}

func TestRenameMissingKey(t *testing.T) {
	s := newTestStore(t)
	r := s.Execute(req(command.ActionRename, "missing", "dest"))
	if r.Ok || r.Str != command.ErrNoSuchKey {
		t.Fatalf("RENAME missing key = %+v, want ERR no such key", r)
	}
}

func TestUnknownCommand(t *testing.T) {
	s := newTestStore(t)
	r := s.Execute(command.NewRequest(command.ActionUnknown))
	if r.Ok || r.Str != command.ErrUnknownCommand {
		t.Fatalf("unknown command = %+v, want ERR unknown command", r)
	}
}

func TestFlushall(t *testing.T) {
	s := newTestStore(t)
	mustOk(t, s.Execute(req(command.ActionSet, "a", "1")))
	mustOk(t, s.Execute(req(command.ActionSet, "b", "2")))
	mustOk(t, s.Execute(command.NewRequest(command.ActionFlushall)))
	if s.Count() != 0 {
		t.Fatalf("Count() after FLUSHALL = %d, want 0", s.Count())
	}
}

// SAVE; FLUSHALL; Load on the same Store round-trips every entry.
func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	mustOk(t, s.Execute(req(command.ActionSet, "str", "hello")))
	mustOk(t, s.Execute(req(command.ActionRpush, "list", "a", "b", "c")))
	mustOk(t, s.Execute(req(command.ActionZadd, "zset", "1", "a", "2", "b")))

	r := mustOk(t, s.Execute(command.NewRequest(command.ActionSave)))
	if r.Tag != command.ReplyBool || !r.BVal {
		t.Fatalf("SAVE = %+v, want Bool(true)", r)
	}

	mustOk(t, s.Execute(command.NewRequest(command.ActionFlushall)))
	if s.Count() != 0 {
		t.Fatalf("Count() after FLUSHALL = %d, want 0", s.Count())
	}

	if err := s.Load(); err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	rs := mustOk(t, s.Execute(req(command.ActionGet, "str")))
	if rs.Str != "hello" {
		t.Fatalf("GET str after reload = %q, want hello", rs.Str)
	}
	rl := mustOk(t, s.Execute(req(command.ActionLrange, "list", "0", "2")))
	if len(rl.List) != 3 || rl.List[0] != "a" || rl.List[2] != "c" {
		t.Fatalf("LRANGE list after reload = %v", rl.List)
	}
	rz := mustOk(t, s.Execute(req(command.ActionZscore, "zset", "b")))
	if rz.DVal != 2 {
		t.Fatalf("ZSCORE zset b after reload = %v, want 2", rz.DVal)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	s := New(Options{HashSeed: 1, PersistenceFilepath: filepath.Join(dir, "missing.json")})
	if err := s.Load(); err != nil {
		t.Fatalf("Load() on a missing file = %v, want nil", err)
	}
	if s.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", s.Count())
	}
}

// A SAVE whose target directory has been removed surfaces as an Error
// reply, not a silent Bool(true).
func TestSaveIOFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	s := New(Options{HashSeed: 1, PersistenceFilepath: path})
	mustOk(t, s.Execute(req(command.ActionSet, "k", "v")))

	if err := os.RemoveAll(dir); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}

	r := s.Execute(command.NewRequest(command.ActionSave))
	if r.Ok {
		t.Fatalf("SAVE into a missing directory succeeded, want an Error reply")
	}
}
