package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGitNotFound indicates that the git binary is not available on PATH.
var ErrGitNotFound = errors.New("git binary not found in PATH")

// CommandRunner abstracts git subprocess invocation so that tests can
// supply canned output without a real repository.
type CommandRunner interface {
	// Run executes a git subcommand against the repository at repoPath
	// and returns its standard output, trimmed of surrounding
	// whitespace. Any diagnostic output on stderr is treated as a
	// failed query: the result is absent and an error is returned.
	Run(ctx context.Context, repoPath string, args ...string) (string, error)
}

// CLIRunner runs queries through the git command-line binary.
type CLIRunner struct{}

// Run executes `git -C <repoPath> <args...>`.
func (CLIRunner) Run(ctx context.Context, repoPath string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", repoPath}, args...)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %v", ErrGitNotFound, err)
		}
		return "", fmt.Errorf("git %s failed: %w: %s", subcommand(args), err, strings.TrimSpace(stderr.String()))
	}

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return "", fmt.Errorf("git %s reported: %s", subcommand(args), msg)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func subcommand(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// Compile-time interface conformance check.
var _ CommandRunner = CLIRunner{}
