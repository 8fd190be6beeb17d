package git

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// Patch fetches the change content for a single commit: pure patch
// text with no commit message or header metadata. An empty string is a
// valid result (an empty commit).
func (r *HistoryReader) Patch(ctx context.Context, sha string) (string, error) {
	// --pretty=format: (empty) suppresses the message header, which
	// also handles initial commits cleanly.
	out, err := r.runner.Run(ctx, r.opts.RepoPath, "show", "--pretty=format:", "--patch", sha)
	if err != nil {
		return "", fmt.Errorf("git show %s failed: %w", sha, err)
	}
	return out, nil
}

// ChangedPaths lists the files touched by a single commit.
func (r *HistoryReader) ChangedPaths(ctx context.Context, sha string) ([]ChangedFile, error) {
	out, err := r.runner.Run(ctx, r.opts.RepoPath, "show", "--pretty=format:", "--name-status", "-z", sha)
	if err != nil {
		return nil, fmt.Errorf("git show %s failed: %w", sha, err)
	}
	return parseNameStatus([]byte(out))
}

// parseNameStatus parses NUL-delimited `--name-status -z` output.
// Format: STATUS\0PATH\0 (or STATUS\0OLDPATH\0NEWPATH\0 for renames/copies)
func parseNameStatus(data []byte) ([]ChangedFile, error) {
	parts := bytes.Split(data, []byte{0x00})

	entries := make([]ChangedFile, 0, len(parts)/2)
	i := 0

	for i < len(parts) {
		status := strings.TrimSpace(string(parts[i]))
		if status == "" {
			i++
			continue
		}

		if i+1 >= len(parts) {
			break
		}

		kind, twoPaths := nameStatusToChangeKind(status)

		if twoPaths {
			// Rename/Copy: STATUS\0OLDPATH\0NEWPATH
			if i+2 >= len(parts) {
				return nil, fmt.Errorf("unexpected name-status output: rename entry missing new path")
			}
			entries = append(entries, ChangedFile{
				Path:    string(parts[i+2]),
				OldPath: string(parts[i+1]),
				Kind:    kind,
			})
			i += 3
		} else {
			entries = append(entries, ChangedFile{
				Path: string(parts[i+1]),
				Kind: kind,
			})
			i += 2
		}
	}

	return entries, nil
}

// nameStatusToChangeKind converts a git status letter to ChangeKind.
// The second return reports whether the entry carries two paths.
func nameStatusToChangeKind(status string) (ChangeKind, bool) {
	if len(status) == 0 {
		return ChangeKindModified, false
	}
	switch status[0] {
	case 'A':
		return ChangeKindAdded, false
	case 'D':
		return ChangeKindDeleted, false
	case 'R':
		return ChangeKindRenamed, true
	case 'C':
		// Copy is treated like Added for our purposes, but has two paths
		return ChangeKindAdded, true
	default:
		return ChangeKindModified, false
	}
}
