package glob

import "testing"

func TestMatchIdentities(t *testing.T) {
	cases := []string{"", "a", "abc", "user:1", "*weird*"}
	for _, s := range cases {
		if !Match(s, "*") {
			t.Errorf("Match(%q, %q) = false, want true", s, "*")
		}
	}
	if !Match("", "") {
		t.Errorf("Match(\"\", \"\") = false, want true")
	}
}

func TestMatchEmptySourceVsQuestion(t *testing.T) {
	// "?" requires exactly one character, so an empty source never matches.
	if Match("", "?") {
		t.Errorf("Match(\"\", \"?\") = true, want false")
	}
}

func TestMatchLiteralEscape(t *testing.T) {
	cases := []struct {
		source, pattern string
		want             bool
	}{
		{"*", `\*`, true},
		{"a", `\*`, false},
		{"?", `\?`, true},
		{`\`, `\\`, true},
		{"ab", `a?`, true},
		{"abc", `a?`, false},
		{"user:1", "user:*", true},
		{"admin:x", "user:*", false},
		{"user:1", "user:?", true},
		{"user:12", "user:?", false},
		{"a", `a\`, false}, // trailing unescaped backslash never matches
	}
	for _, c := range cases {
		if got := Match(c.source, c.pattern); got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.source, c.pattern, got, c.want)
		}
	}
}

func TestMatchKeysScenario(t *testing.T) {
	keys := []string{"user:1", "user:2", "admin:x"}
	var matched []string
	for _, k := range keys {
		if Match(k, "user:*") {
			matched = append(matched, k)
		}
	}
	want := []string{"user:1", "user:2"}
	if len(matched) != len(want) {
		t.Fatalf("matched = %v, want %v", matched, want)
	}
	for i := range want {
		if matched[i] != want[i] {
			t.Fatalf("matched = %v, want %v", matched, want)
		}
	}
}
