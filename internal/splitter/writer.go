package splitter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SegmentSink receives the content of per-table segments. Exactly one
// segment is open at a time; Open implicitly finalizes the previous one.
type SegmentSink interface {
	Open(table string) error
	Append(line string) error
	Close() error
}

// SegmentWriter is the file-backed SegmentSink: one <table>.sql file per
// segment inside a single output directory, truncated on Open so re-running
// a split produces byte-identical files instead of appending.
type SegmentWriter struct {
	dir  string
	file *os.File
}

// NewSegmentWriter creates the output directory up front so an unwritable
// target fails before any scanning starts.
func NewSegmentWriter(dir string) (*SegmentWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &SegmentWriter{dir: dir}, nil
}

// Open starts a fresh segment for the table and writes the fixed preamble.
func (w *SegmentWriter) Open(table string) error {
	if err := w.Close(); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(w.dir, table+".sql"))
	if err != nil {
		return fmt.Errorf("failed to create segment for %s: %w", table, err)
	}
	w.file = f
	if _, err := fmt.Fprintf(f, "SET FOREIGN_KEY_CHECKS = 0;\n\nDROP TABLE IF EXISTS `%s`;\n\n", table); err != nil {
		return fmt.Errorf("failed to write preamble for %s: %w", table, err)
	}
	return nil
}

// Append writes one line plus a line terminator to the open segment.
func (w *SegmentWriter) Append(line string) error {
	if w.file == nil {
		return fmt.Errorf("no open segment")
	}
	if _, err := w.file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write segment %s: %w", w.file.Name(), err)
	}
	return nil
}

// Close releases the current segment file, if any. Safe to call repeatedly.
func (w *SegmentWriter) Close() error {
	if w.file == nil {
		return nil
	}
	name := w.file.Name()
	err := w.file.Close()
	w.file = nil
	if err != nil {
		return fmt.Errorf("failed to close segment %s: %w", name, err)
	}
	return nil
}

// DiscardSink drops every segment; used by dry runs to resolve dispositions
// without touching the filesystem.
type DiscardSink struct{}

func (DiscardSink) Open(string) error   { return nil }
func (DiscardSink) Append(string) error { return nil }
func (DiscardSink) Close() error        { return nil }

// unsafeTableName reports whether a table name cannot be used as a file
// name. Such names are refused rather than escaped: the dump formats we
// accept never produce them, so an occurrence means the header was
// misparsed and routing it anywhere would risk path traversal.
func unsafeTableName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return true
	}
	return strings.ContainsAny(name, "/\\\x00")
}
