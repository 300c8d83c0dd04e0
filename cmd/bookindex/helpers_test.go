package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	bookindex "github.com/alnah/go-bookindex"
)

// fixedNow is the clock of every test environment.
var fixedNow = time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)

// testEnv returns an environment with captured output and the given
// environment variables. Builders are real indexers.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := DefaultEnv()
	env.Now = func() time.Time { return fixedNow }
	env.Stdout = stdout
	env.Stderr = stderr
	env.Getenv = func(k string) string { return vars[k] }
	env.Environ = func() []string {
		out := make([]string, 0, len(vars))
		for k, v := range vars {
			out = append(out, k+"="+v)
		}
		return out
	}
	return env, stdout, stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// mockBuilder records the build request and returns canned documents.
type mockBuilder struct {
	mu     sync.Mutex
	opts   int
	input  bookindex.Input
	result *bookindex.Result
	err    error
	closed bool
}

func (m *mockBuilder) Build(_ context.Context, input bookindex.Input) (*bookindex.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.input = input
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	res := &bookindex.Result{Index: mockOutput(input, "index")}
	if input.Duplicates {
		res.Duplicates = mockOutput(input, "duplicates")
	}
	if input.Report {
		res.Report = mockOutput(input, "report")
	}
	return res, nil
}

func (m *mockBuilder) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func mockOutput(input bookindex.Input, name string) *bookindex.Output {
	out := &bookindex.Output{HTML: []byte("<html>" + name + "</html>"), Entries: input.Index.Len()}
	if input.PDF {
		out.PDF = []byte("%PDF-1.4 " + name)
	}
	return out
}

// withMockBuilder makes env hand out m.
func withMockBuilder(env *Environment, m *mockBuilder) {
	env.NewBuilder = func(opts ...bookindex.Option) (Builder, error) {
		m.opts = len(opts)
		return m, nil
	}
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
