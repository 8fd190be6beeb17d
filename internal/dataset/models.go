package dataset

// Entry pairs a commit's change content with its assembled commit
// message. Immutable once created; the JSON tags define the on-disk
// training-data schema.
type Entry struct {
	Diff          string `json:"diff"`
	CommitMessage string `json:"commit_message"`
}

// SkipCounts tallies records dropped during a build, by reason.
type SkipCounts struct {
	Oversize     int // diff exceeded the size threshold
	NoDiff       int // per-commit query returned no usable content
	PathFiltered int // no touched path survived the include/exclude globs
}

// Total returns the number of skipped records.
func (s SkipCounts) Total() int {
	return s.Oversize + s.NoDiff + s.PathFiltered
}

// Result is an ordered dataset produced by a Builder. Entry order
// matches commit order from the log (newest first).
type Result struct {
	Entries []Entry
	Skipped SkipCounts
}

// Len returns the number of entries.
func (r *Result) Len() int {
	return len(r.Entries)
}

// TotalDiffChars returns the summed diff length across all entries.
func (r *Result) TotalDiffChars() int {
	total := 0
	for _, e := range r.Entries {
		total += len(e.Diff)
	}
	return total
}

// SkipReason describes why a commit was dropped from the dataset.
type SkipReason int

const (
	SkipOversize SkipReason = iota
	SkipNoDiff
	SkipPathFiltered
)

// String returns a string representation of the skip reason.
func (r SkipReason) String() string {
	switch r {
	case SkipOversize:
		return "diff exceeds size threshold"
	case SkipNoDiff:
		return "diff unavailable"
	case SkipPathFiltered:
		return "no path matches filters"
	default:
		return "unknown"
	}
}
