package parser

import (
	"strings"

	"github.com/cch137/gokv/lib/command"
)

// Parse tokenises line into a Request. The first token selects the Action
// (case-insensitive; unresolved tokens yield command.ActionUnknown - the
// executor, not the parser, reports "ERR unknown command"). Every
// subsequent token becomes a String-tagged Arg; numeric coercion is an
// executor concern (command.Arg.AsUint/AsFloat), not the parser's.
func Parse(line string) *command.Request {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return command.NewRequest(command.ActionUnknown)
	}

	action := command.LookupAction(tokens[0])
	args := make([]command.Arg, 0, len(tokens)-1)
	for _, t := range tokens[1:] {
		args = append(args, command.ArgStr(t))
	}
	return command.NewRequest(action, args...)
}

// tokenize splits line into bare words and double-quoted strings. Runs of
// whitespace outside quotes collapse to a single separator; leading and
// trailing whitespace is ignored. Inside a quoted string, `\"` is an
// escape for a literal quote and every other backslash is literal. An
// unterminated quote runs to the end of the line.
func tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	inQuotes := false
	haveToken := false

	flush := func() {
		if haveToken {
			tokens = append(tokens, cur.String())
			cur.Reset()
			haveToken = false
		}
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if inQuotes {
			if c == '\\' && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
				continue
			}
			if c == '"' {
				inQuotes = false
				continue
			}
			cur.WriteRune(c)
			continue
		}

		switch {
		case c == '"':
			inQuotes = true
			haveToken = true
		case isSpace(c):
			flush()
		default:
			haveToken = true
			cur.WriteRune(c)
		}
	}
	flush()

	return tokens
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
