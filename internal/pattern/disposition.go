package pattern

// Disposition is the filtering outcome for a single table.
type Disposition int

const (
	// Full keeps the table's structure and all of its data.
	Full Disposition = iota
	// CreateOnly keeps the CREATE TABLE statement but drops every INSERT.
	CreateOnly
	// Skip drops the table entirely; no output file is produced for it.
	Skip
)

func (d Disposition) String() string {
	switch d {
	case CreateOnly:
		return "create-only"
	case Skip:
		return "skip"
	default:
		return "full"
	}
}

// Policy holds the ordered pattern lists that decide what happens to each
// table encountered in a dump.
type Policy struct {
	Exclude    []string
	CreateOnly []string
}

// DefaultPolicy excludes tables whose names start with an underscore,
// the usual convention for scratch and migration bookkeeping tables.
func DefaultPolicy() Policy {
	return Policy{Exclude: []string{"_*"}}
}

// Resolve maps a table name to its disposition. Exclude patterns are checked
// first and short-circuit: a name matching both lists resolves to Skip.
// Resolve is called once per CREATE TABLE header, never per line.
func (p Policy) Resolve(name string) Disposition {
	for _, pat := range p.Exclude {
		if Match(name, pat) {
			return Skip
		}
	}
	for _, pat := range p.CreateOnly {
		if Match(name, pat) {
			return CreateOnly
		}
	}
	return Full
}
