package test

import (
	"os"
	"path/filepath"
	"sort"
)

// Tree is a source tree written to a temporary directory, keyed by slash-separated
// relative path.
type Tree map[string]string

// Write creates the files under a new temporary directory and returns its path.
func (t Tree) Write() (string, error) {
	dir, err := os.MkdirTemp("", "poextract-suite-*")
	if err != nil {
		return "", err
	}
	for _, name := range t.Names() {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", err
		}
		if err := os.WriteFile(path, []byte(t[name]), 0o600); err != nil {
			return "", err
		}
	}
	return dir, nil
}

// Names returns the relative paths in sorted order.
func (t Tree) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RecordingReporter collects walk errors by path.
type RecordingReporter struct {
	Errors map[string]error
}

func (r *RecordingReporter) ReportError(path string, err error) {
	if r.Errors == nil {
		r.Errors = map[string]error{}
	}
	r.Errors[path] = err
}
