package git

import "context"

// MockSource is a test double implementing both CommitSource and
// PatchSource with predefined data.
type MockSource struct {
	Commits   []CommitRecord
	ReadErr   error
	Patches   map[string]string // keyed by SHA
	PatchErrs map[string]error
	Paths     map[string][]ChangedFile
	PathErrs  map[string]error
}

// ReadCommits returns the predefined commit records or error.
func (m *MockSource) ReadCommits(_ context.Context) ([]CommitRecord, error) {
	return m.Commits, m.ReadErr
}

// Patch returns the predefined patch text for sha.
func (m *MockSource) Patch(_ context.Context, sha string) (string, error) {
	if err, ok := m.PatchErrs[sha]; ok {
		return "", err
	}
	return m.Patches[sha], nil
}

// ChangedPaths returns the predefined changed files for sha.
func (m *MockSource) ChangedPaths(_ context.Context, sha string) ([]ChangedFile, error) {
	if err, ok := m.PathErrs[sha]; ok {
		return nil, err
	}
	return m.Paths[sha], nil
}

// Compile-time interface conformance checks.
var (
	_ CommitSource = (*MockSource)(nil)
	_ PatchSource  = (*MockSource)(nil)
)
