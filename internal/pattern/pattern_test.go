package pattern_test

import (
	"db-split/internal/pattern"
	"testing"
)

func TestMatch_Wildcards(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		want    bool
	}{
		// '*' matches any sequence, including the empty one
		{"anything", "*", true},
		{"", "*", true},
		{"abcd", "ab*", true},
		{"ab", "ab*", true},
		{"xabcd", "ab*", false},
		{"abcd", "*cd", true},
		{"abcd", "*bc*", true},
		{"abcde", "a*c*e", true},
		{"abcde", "a*c*f", false},

		// '?' matches exactly one character
		{"abc", "a?c", true},
		{"ac", "a?c", false},
		{"abbc", "a?c", false},
		{"x", "?", true},
		{"", "?", false},

		// no wildcards: exact match only, anchored at both ends
		{"users", "users", true},
		{"users", "user", false},
		{"user", "users", false},
		{"", "", true},

		// combined
		{"_migrations", "_*", true},
		{"migrations", "_*", false},
		{"log_2024_01", "log_????_??", true},
		{"log_2024_1", "log_????_??", false},
	}

	for _, c := range cases {
		if got := pattern.Match(c.name, c.pattern); got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.name, c.pattern, got, c.want)
		}
	}
}

func TestMatch_NameMatchesItself(t *testing.T) {
	for _, name := range []string{"a", "users", "_tmp", "weird`name", "UPPER_case"} {
		if !pattern.Match(name, name) {
			t.Errorf("Match(%q, %q) = false, want true", name, name)
		}
	}
}
