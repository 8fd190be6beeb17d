package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aimmit/diffset/internal/git"
)

// DefaultMaxDiffChars is the default size threshold: commits whose
// diff text is longer are dropped from the dataset.
const DefaultMaxDiffChars = 5000

// BuildOptions configures a dataset build.
type BuildOptions struct {
	MaxDiffChars int      // 0 means DefaultMaxDiffChars
	MaxCommits   int      // 0 means all commits from the source
	Include      []string // Glob patterns on touched paths
	Exclude      []string // Glob patterns on touched paths
	OnSkip       func(sha string, reason SkipReason)
	OnProgress   func(processed int)
}

// Builder produces a dataset by pairing each commit's patch with its
// assembled message, in log order.
type Builder struct {
	source  git.CommitSource
	patches git.PatchSource
	opts    BuildOptions
}

// NewBuilder creates a Builder over the given history and patch sources.
func NewBuilder(source git.CommitSource, patches git.PatchSource, opts BuildOptions) *Builder {
	if opts.MaxDiffChars <= 0 {
		opts.MaxDiffChars = DefaultMaxDiffChars
	}
	return &Builder{source: source, patches: patches, opts: opts}
}

// Build runs the fetch-and-filter loop. Per-commit query failures are
// reported through OnSkip and do not halt the run; only the bulk log
// query failing abandons the build.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	records, err := b.source.ReadCommits(ctx)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	if b.opts.MaxCommits > 0 && len(records) > b.opts.MaxCommits {
		records = records[:b.opts.MaxCommits]
	}

	result := &Result{Entries: make([]Entry, 0, len(records))}

	for i, rec := range records {
		if !b.commitMatchesFilters(ctx, rec.SHA, result) {
			continue
		}

		diff, err := b.patches.Patch(ctx, rec.SHA)
		if err != nil {
			result.Skipped.NoDiff++
			b.skip(rec.SHA, SkipNoDiff)
			continue
		}

		if len(diff) > b.opts.MaxDiffChars {
			result.Skipped.Oversize++
			b.skip(rec.SHA, SkipOversize)
			continue
		}

		result.Entries = append(result.Entries, Entry{
			Diff:          diff,
			CommitMessage: rec.Message(),
		})

		if b.opts.OnProgress != nil {
			b.opts.OnProgress(i + 1)
		}
	}

	return result, nil
}

// commitMatchesFilters reports whether the commit touches at least one
// path surviving the include/exclude globs. Without configured
// filters, no extra query is issued.
func (b *Builder) commitMatchesFilters(ctx context.Context, sha string, result *Result) bool {
	if len(b.opts.Include) == 0 && len(b.opts.Exclude) == 0 {
		return true
	}

	files, err := b.patches.ChangedPaths(ctx, sha)
	if err != nil {
		result.Skipped.NoDiff++
		b.skip(sha, SkipNoDiff)
		return false
	}

	for _, f := range files {
		if b.pathMatchesFilters(f.Path) {
			return true
		}
	}

	result.Skipped.PathFiltered++
	b.skip(sha, SkipPathFiltered)
	return false
}

// pathMatchesFilters checks a path against the include/exclude globs.
func (b *Builder) pathMatchesFilters(path string) bool {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range b.opts.Exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	// If no include patterns, accept all
	if len(b.opts.Include) == 0 {
		return true
	}

	for _, pattern := range b.opts.Include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}

	return false
}

func (b *Builder) skip(sha string, reason SkipReason) {
	if b.opts.OnSkip != nil {
		b.opts.OnSkip(sha, reason)
	}
}
