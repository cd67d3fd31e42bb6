// Package testutil provides filesystem fixture helpers for tests.
// Fixtures are real directories (t.TempDir based) because symlink cycles
// and hard links cannot be represented in an in-memory filesystem.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateDir creates a directory (including parents) under parent and
// returns its path.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()
	path := filepath.Join(parent, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
	return path
}

// CreateFile creates a file with the given content under dir and
// returns its path. Parent directories are created as needed.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create file %s: %v", path, err)
	}
	return path
}

// CreateSymlink creates a symlink at link pointing to target.
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("failed to create symlink %s -> %s: %v", link, target, err)
	}
}

// CreateHardLink creates a hard link at link for target.
func CreateHardLink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Link(target, link); err != nil {
		t.Fatalf("failed to create hard link %s -> %s: %v", link, target, err)
	}
}
