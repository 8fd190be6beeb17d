package git

import "strings"

// CommitRecord holds the three log fields extracted for a single
// non-merge commit.
type CommitRecord struct {
	SHA     string
	Subject string
	Body    string // may be empty
}

// Message assembles the full commit message: subject alone when the
// body is empty, otherwise subject, blank line, body. The result is
// trimmed of surrounding whitespace.
func (r CommitRecord) Message() string {
	body := strings.TrimSpace(r.Body)
	if body == "" {
		return strings.TrimSpace(r.Subject)
	}
	return strings.TrimSpace(r.Subject + "\n\n" + body)
}

// ChangedFile represents a file touched by a commit.
type ChangedFile struct {
	Path    string
	OldPath string // non-empty for renames
	Kind    ChangeKind
}

// ChangeKind represents the type of change.
type ChangeKind int

const (
	ChangeKindAdded ChangeKind = iota
	ChangeKindModified
	ChangeKindDeleted
	ChangeKindRenamed
)

// String returns a string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeKindAdded:
		return "added"
	case ChangeKindModified:
		return "modified"
	case ChangeKindDeleted:
		return "deleted"
	case ChangeKindRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath   string
	Branch     string // revision to read; empty or "HEAD" reads the current branch
	MaxCommits int    // 0 reads the full history
}
