package pattern

// Match reports whether name matches the glob pattern. '*' matches any
// sequence of characters including the empty one, '?' matches exactly one
// character, and every other character matches itself. The pattern is
// anchored at both ends, so a pattern without wildcards matches only the
// exact name.
func Match(name, pattern string) bool {
	n, p := 0, 0
	star, mark := -1, 0

	for n < len(name) {
		switch {
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == name[n]):
			n++
			p++
		case p < len(pattern) && pattern[p] == '*':
			// Remember the star so we can come back and widen it.
			star = p
			mark = n
			p++
		case star >= 0:
			p = star + 1
			mark++
			n = mark
		default:
			return false
		}
	}

	// Trailing stars match the empty tail.
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
