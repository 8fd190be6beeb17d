package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// HistoryReader reads non-merge commit history from a Git repository
// through a CommandRunner.
type HistoryReader struct {
	runner CommandRunner
	opts   ReadOptions
}

// NewHistoryReader creates a history reader for the given repository.
func NewHistoryReader(runner CommandRunner, opts ReadOptions) *HistoryReader {
	return &HistoryReader{runner: runner, opts: opts}
}

// Validate checks that the configured path contains a Git repository.
func (r *HistoryReader) Validate() error {
	if _, err := gogit.PlainOpen(r.opts.RepoPath); err != nil {
		return fmt.Errorf("not a git repository: %s: %w", r.opts.RepoPath, err)
	}
	return nil
}

// ReadCommits runs the bulk log query and parses it into CommitRecords,
// newest first.
func (r *HistoryReader) ReadCommits(ctx context.Context) ([]CommitRecord, error) {
	args := []string{
		"log",
		"--no-merges",
		"--pretty=format:" + logPrettyFormat,
	}

	if r.opts.MaxCommits > 0 {
		args = append(args, "-n", strconv.Itoa(r.opts.MaxCommits))
	}

	rev := strings.TrimSpace(r.opts.Branch)
	if rev != "" && !strings.EqualFold(rev, "HEAD") {
		args = append(args, rev)
	}

	out, err := r.runner.Run(ctx, r.opts.RepoPath, args...)
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w", err)
	}

	return ParseLog(out), nil
}
