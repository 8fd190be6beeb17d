package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/aimmit/diffset/config"
	"github.com/aimmit/diffset/internal/dataset"
	"github.com/aimmit/diffset/internal/git"
	"github.com/aimmit/diffset/internal/output"
)

// CommandContext holds common state for command execution. It
// encapsulates the shared setup and extraction logic across commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Result   *dataset.Result
}

// NewCommandContext creates a context from CLI flags. It loads
// configuration, validates the repository, and runs the extraction.
//
// A missing git binary is fatal. An invalid repository path or a
// failed bulk log query is reported to stderr and yields an empty
// dataset; the caller decides whether empty output is acceptable.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	repoPath := c.String("repo")

	reader := git.NewHistoryReader(git.CLIRunner{}, git.ReadOptions{
		RepoPath:   repoPath,
		Branch:     cfg.Extract.Branch,
		MaxCommits: cfg.Extract.MaxCommits,
	})

	cmdCtx := &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Result:   &dataset.Result{},
	}

	if err := reader.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return cmdCtx, nil
	}

	builder := dataset.NewBuilder(reader, reader, dataset.BuildOptions{
		MaxDiffChars: cfg.Extract.MaxDiffChars,
		MaxCommits:   cfg.Extract.MaxCommits,
		Include:      cfg.Filters.Include,
		Exclude:      cfg.Filters.Exclude,
		OnSkip: func(sha string, reason dataset.SkipReason) {
			if reason == dataset.SkipNoDiff {
				fmt.Fprintf(os.Stderr, "Warning: skipping %s: %s\n", sha, reason)
			}
		},
	})

	result, err := builder.Build(context.Background())
	if err != nil {
		if errors.Is(err, git.ErrGitNotFound) {
			return nil, err
		}
		fmt.Fprintf(os.Stderr, "Warning: failed to read commit log: %v\n", err)
		return cmdCtx, nil
	}

	cmdCtx.Result = result
	return cmdCtx, nil
}

// HasEntries returns true if the extraction produced any entries.
func (ctx *CommandContext) HasEntries() bool {
	return ctx.Result.Len() > 0
}

// PrintNoEntriesMessage prints a message when the dataset is empty.
func (ctx *CommandContext) PrintNoEntriesMessage() {
	fmt.Println("No dataset entries produced for the given repository and filters.")
}

// Report wraps the result with run metadata for the output writers.
func (ctx *CommandContext) Report() *output.DatasetReport {
	return &output.DatasetReport{
		RepoPath:    ctx.RepoPath,
		Branch:      ctx.Config.Extract.Branch,
		GeneratedAt: time.Now(),
		Result:      ctx.Result,
	}
}
