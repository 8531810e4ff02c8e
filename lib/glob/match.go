package glob

// Match reports whether source matches pattern under glob rules: '*'
// matches zero or more characters, '?' matches exactly one,
// '\x' matches the literal 'x' (so '\*', '\?' and '\\' all lose their
// special meaning), and every other character matches itself.
//
// Implementation is the classic iterative two-pointer wildcard matcher
// with a single backtracking anchor for the most recent '*' - no
// recursion, no memoisation table, O(n*m) worst case like any
// backtracking glob matcher but O(n+m) for patterns with few stars.
func Match(source, pattern string) bool {
	s, p := []byte(source), []byte(pattern)
	si, pi := 0, 0
	starPatternIdx, starSourceIdx := -1, -1

	for si < len(s) {
		if pi < len(p) {
			switch p[pi] {
			case '\\':
				if pi+1 < len(p) && si < len(s) && s[si] == p[pi+1] {
					si++
					pi += 2
					continue
				}
			case '?':
				si++
				pi++
				continue
			case '*':
				starPatternIdx = pi
				starSourceIdx = si
				pi++
				continue
			default:
				if s[si] == p[pi] {
					si++
					pi++
					continue
				}
			}
		}

		// Mismatch (or pattern exhausted with source remaining): fall back
		// to the last '*' and let it absorb one more source character.
		if starPatternIdx == -1 {
			return false
		}
		starSourceIdx++
		si = starSourceIdx
		pi = starPatternIdx + 1
	}

	// Source exhausted: the rest of the pattern must be all stars.
	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}
