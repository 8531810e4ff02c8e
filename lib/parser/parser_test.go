package parser

import (
	"reflect"
	"testing"

	"github.com/cch137/gokv/lib/command"
)

func argStrs(args []command.Arg) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.AsString()
	}
	return out
}

func TestParseBareWords(t *testing.T) {
	req := Parse("SET author cch137")
	if req.Action != command.ActionSet {
		t.Fatalf("Action = %v, want SET", req.Action)
	}
	if got := argStrs(req.Args); !reflect.DeepEqual(got, []string{"author", "cch137"}) {
		t.Fatalf("Args = %v", got)
	}
}

func TestParseQuotedString(t *testing.T) {
	req := Parse(`ZADD scores 3 "carol diaz"`)
	if req.Action != command.ActionZadd {
		t.Fatalf("Action = %v, want ZADD", req.Action)
	}
	want := []string{"scores", "3", "carol diaz"}
	if got := argStrs(req.Args); !reflect.DeepEqual(got, want) {
		t.Fatalf("Args = %v, want %v", got, want)
	}
}

func TestParseEscapedQuote(t *testing.T) {
	req := Parse(`SET k "say \"hi\""`)
	want := []string{"k", `say "hi"`}
	if got := argStrs(req.Args); !reflect.DeepEqual(got, want) {
		t.Fatalf("Args = %v, want %v", got, want)
	}
}

func TestParseCaseInsensitiveAction(t *testing.T) {
	req := Parse("get author")
	if req.Action != command.ActionGet {
		t.Fatalf("Action = %v, want GET", req.Action)
	}
}

func TestParseUnknownAction(t *testing.T) {
	req := Parse("FROBNICATE x")
	if req.Action != command.ActionUnknown {
		t.Fatalf("Action = %v, want ActionUnknown", req.Action)
	}
}

func TestParseCollapsesWhitespace(t *testing.T) {
	req := Parse("RPUSH   list1   a   b")
	want := []string{"list1", "a", "b"}
	if got := argStrs(req.Args); !reflect.DeepEqual(got, want) {
		t.Fatalf("Args = %v, want %v", got, want)
	}
}

func TestParseEmptyLine(t *testing.T) {
	req := Parse("   ")
	if req.Action != command.ActionUnknown {
		t.Fatalf("Action = %v, want ActionUnknown", req.Action)
	}
	if req.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", req.Len())
	}
}
