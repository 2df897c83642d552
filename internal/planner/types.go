package planner

// Entry is one planned rename. It is produced by [Build] and not modified
// afterwards.
type Entry struct {
	OldPath string // Path as discovered (relative to the walk root's filesystem).
	NewPath string // Sibling of OldPath carrying NewName.
	OldName string
	NewName string
}

// Plan is the ordered set of renames for one run.
type Plan struct {
	Entries []Entry

	// Conflicts maps a target path to every source (OldPath) that slugifies
	// to it, in plan order. Only targets with two or more sources appear.
	Conflicts map[string][]string

	// ConflictTargets lists the keys of Conflicts sorted.
	ConflictTargets []string

	// Candidates is the number of files inspected, including unchanged ones.
	Candidates int
}

// Empty reports whether there is nothing to rename.
func (p *Plan) Empty() bool { return len(p.Entries) == 0 }

// Len returns the number of planned renames.
func (p *Plan) Len() int { return len(p.Entries) }

// Unchanged returns how many inspected files already had canonical names.
func (p *Plan) Unchanged() int { return p.Candidates - len(p.Entries) }
