package splitter

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"db-split/internal/pattern"
)

// scan states. Skip tables never leave stateIdle: their header, body and
// data lines are all discarded until the next CREATE TABLE.
type state int

const (
	stateIdle             state = iota // no table open
	stateHeaderOpen                    // inside an unterminated CREATE body
	stateTableOpen                     // table open, between statements
	stateInsertOpen                    // inside an unterminated INSERT body
	stateInsertSuppressed              // inside a discarded INSERT body (create-only table)
)

// scanState is the mutable context threaded through the line loop: the
// current table, its disposition (resolved once, at the header), and which
// statement the scanner is inside.
type scanState struct {
	state state
	table string
	disp  pattern.Disposition
}

func (s *scanState) reset() {
	*s = scanState{}
}

// TableReport records one table encountered in the dump and what was
// decided for it.
type TableReport struct {
	Name        string
	Disposition pattern.Disposition
}

// Result summarizes a completed scan.
type Result struct {
	Tables   []TableReport
	Produced int // segments actually written (skip tables excluded)
	Warnings []string
}

// Scan makes a single forward pass over the dump stream, classifying each
// line and routing statement bodies to per-table segments through sink. It
// never backtracks and resolves each table's disposition exactly once, at
// its CREATE TABLE header. onTable, when non-nil, is invoked for every
// header as it is encountered.
//
// Parse-level problems (a header whose name cannot be extracted, input
// ending mid-statement) are recorded as warnings and scanning continues;
// only sink failures and mid-stream read errors abort the pass.
func Scan(r io.Reader, policy pattern.Policy, sink SegmentSink, onTable func(TableReport)) (*Result, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	res := &Result{}
	st := &scanState{}

	for {
		line, readErr := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimRight(line, "\n")
			line = strings.TrimRight(line, "\r")
			if err := processLine(line, st, policy, sink, res, onTable); err != nil {
				sink.Close()
				return res, err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			warn(res, "read failed after %d table(s): %v; stopping, last segment may be incomplete", len(res.Tables), readErr)
			break
		}
	}

	if st.state == stateHeaderOpen || st.state == stateInsertOpen || st.state == stateInsertSuppressed {
		warn(res, "input ended inside an unterminated statement for table %s; flushed as-is", st.table)
	}
	if err := sink.Close(); err != nil {
		return res, err
	}
	return res, nil
}

func processLine(line string, st *scanState, policy pattern.Policy, sink SegmentSink, res *Result, onTable func(TableReport)) error {
	lc := classify(line)

	// Session pragmas and dump comments are dropped in every state; each
	// segment gets its own foreign-key directive from the preamble.
	if lc.kind == kindCommentOrBlank || lc.kind == kindFKPragma {
		return nil
	}

	// A new header implicitly finalizes whatever was open before it.
	if lc.kind == kindCreateTable {
		return openTable(line, lc, st, policy, sink, res, onTable)
	}

	switch st.state {
	case stateIdle:
		// No table context: INSERT, LOCK and stray lines are all ignored.
		return nil

	case stateHeaderOpen:
		if err := sink.Append(line); err != nil {
			return err
		}
		if lc.terminated {
			if err := sink.Append(""); err != nil {
				return err
			}
			st.state = stateTableOpen
		}
		return nil

	case stateTableOpen:
		switch lc.kind {
		case kindInsert:
			if lc.table != st.table {
				return nil
			}
			if st.disp == pattern.CreateOnly {
				if !lc.terminated {
					st.state = stateInsertSuppressed
				}
				return nil
			}
			if err := sink.Append(line); err != nil {
				return err
			}
			if !lc.terminated {
				st.state = stateInsertOpen
			}
			return nil
		case kindLockTables:
			if lc.table == st.table {
				return sink.Append(line)
			}
			return nil
		case kindUnlockTables:
			return sink.Append(line)
		default:
			// Statements we do not attribute (ALTER, conditional
			// comments, ...) are dropped between statements.
			return nil
		}

	case stateInsertOpen:
		if err := sink.Append(line); err != nil {
			return err
		}
		if lc.terminated {
			st.state = stateTableOpen
		}
		return nil

	case stateInsertSuppressed:
		if lc.terminated {
			st.state = stateTableOpen
		}
		return nil
	}
	return nil
}

func openTable(line string, lc lineClass, st *scanState, policy pattern.Policy, sink SegmentSink, res *Result, onTable func(TableReport)) error {
	name := lc.table
	if unsafeTableName(name) {
		warn(res, "cannot attribute CREATE TABLE statement (name %q); skipping it", name)
		st.reset()
		return nil
	}

	disp := policy.Resolve(name)
	rep := TableReport{Name: name, Disposition: disp}
	res.Tables = append(res.Tables, rep)
	if onTable != nil {
		onTable(rep)
	}

	if disp == pattern.Skip {
		st.reset()
		return nil
	}

	if err := sink.Open(name); err != nil {
		return err
	}
	res.Produced++
	st.table = name
	st.disp = disp

	if err := sink.Append(line); err != nil {
		return err
	}
	if lc.terminated {
		if err := sink.Append(""); err != nil {
			return err
		}
		st.state = stateTableOpen
	} else {
		st.state = stateHeaderOpen
	}
	return nil
}

func warn(res *Result, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	res.Warnings = append(res.Warnings, msg)
	log.Printf("Warning: %s", msg)
}
