package git

import (
	"context"
	"strings"
)

// MockRunner is a test double for CommandRunner. It returns canned
// output keyed by the joined argument string, so tests can exercise
// the reader without a real Git repository.
type MockRunner struct {
	Outputs map[string]string // keyed by strings.Join(args, " ")
	Errs    map[string]error
	Calls   [][]string // records every invocation's args
}

// NewMockRunner creates a MockRunner with empty canned data.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Outputs: make(map[string]string),
		Errs:    make(map[string]error),
	}
}

// Run returns the canned output or error registered for args.
func (m *MockRunner) Run(_ context.Context, _ string, args ...string) (string, error) {
	m.Calls = append(m.Calls, args)
	key := strings.Join(args, " ")
	if err, ok := m.Errs[key]; ok {
		return "", err
	}
	return m.Outputs[key], nil
}

// Compile-time interface conformance check.
var _ CommandRunner = (*MockRunner)(nil)
