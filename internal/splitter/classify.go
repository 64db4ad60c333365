package splitter

import "strings"

// lineKind is the shape-based category of a single dump line. Classification
// is deliberately heuristic (prefix matching, no SQL tokenizer); it is kept
// behind classify so the state machine never inspects raw text itself.
type lineKind int

const (
	kindContinuation lineKind = iota
	kindCreateTable
	kindInsert
	kindLockTables
	kindUnlockTables
	kindFKPragma
	kindCommentOrBlank
)

// lineClass is the classification result for one line.
type lineClass struct {
	kind       lineKind
	table      string // CREATE TABLE / INSERT INTO / LOCK TABLES target, if any
	terminated bool   // line ends with a statement terminator
}

func classify(line string) lineClass {
	t := strings.TrimSpace(line)
	lc := lineClass{kind: kindContinuation, terminated: strings.HasSuffix(t, ";")}

	switch {
	case t == "" || strings.HasPrefix(t, "--"):
		lc.kind = kindCommentOrBlank
	case hasKeyword(t, "CREATE TABLE"):
		lc.kind = kindCreateTable
		lc.table = createTableName(t)
	case hasKeyword(t, "INSERT INTO"):
		lc.kind = kindInsert
		lc.table = ident(strings.TrimSpace(t[len("INSERT INTO"):]))
	case hasKeyword(t, "LOCK TABLES"):
		lc.kind = kindLockTables
		lc.table = ident(strings.TrimSpace(t[len("LOCK TABLES"):]))
	case hasKeyword(t, "UNLOCK TABLES"):
		lc.kind = kindUnlockTables
	case hasKeyword(t, "SET FOREIGN_KEY_CHECKS"):
		lc.kind = kindFKPragma
	}
	return lc
}

// hasKeyword reports whether s starts with the keyword sequence kw
// (case-insensitive) followed by a token boundary.
func hasKeyword(s, kw string) bool {
	if len(s) < len(kw) || !strings.EqualFold(s[:len(kw)], kw) {
		return false
	}
	if len(s) == len(kw) {
		return true
	}
	switch s[len(kw)] {
	case ' ', '\t', '`', '=', ';':
		return true
	}
	return false
}

// createTableName extracts the table name from a CREATE TABLE line,
// skipping an optional IF NOT EXISTS. Returns "" when no name can be
// extracted by either strategy.
func createTableName(t string) string {
	rest := strings.TrimSpace(t[len("CREATE TABLE"):])
	const ifNotExists = "IF NOT EXISTS"
	if len(rest) > len(ifNotExists) && strings.EqualFold(rest[:len(ifNotExists)], ifNotExists) {
		rest = strings.TrimSpace(rest[len(ifNotExists):])
	}
	return ident(rest)
}

// ident reads an identifier from the start of s: the content of a
// backtick-quoted identifier when present, otherwise the first token
// delimited by whitespace, parenthesis, comma or terminator.
func ident(s string) string {
	if s == "" {
		return ""
	}
	if s[0] == '`' {
		if end := strings.IndexByte(s[1:], '`'); end >= 0 {
			return s[1 : 1+end]
		}
		return ""
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '(', ',', ';', '`':
			return s[:i]
		}
	}
	return s
}
