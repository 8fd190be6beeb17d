package git

import "context"

// CommitSource reads the non-merge commit history of a repository.
// This abstraction allows for easier testing and potential alternative
// implementations.
type CommitSource interface {
	// ReadCommits returns the commit records in log order (newest first).
	ReadCommits(ctx context.Context) ([]CommitRecord, error)
}

// PatchSource fetches per-commit change information.
type PatchSource interface {
	// Patch returns the raw patch text for one commit.
	Patch(ctx context.Context, sha string) (string, error)
	// ChangedPaths returns the files touched by one commit.
	ChangedPaths(ctx context.Context, sha string) ([]ChangedFile, error)
}

// Compile-time interface conformance checks.
var (
	_ CommitSource = (*HistoryReader)(nil)
	_ PatchSource  = (*HistoryReader)(nil)
)
