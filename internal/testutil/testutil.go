package testutil

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// TempModTree is a temporary directory used to lay out mods for testing
type TempModTree struct {
	Path string
	T    *testing.T
}

// NewTempModTree creates a new empty temporary directory
func NewTempModTree(t *testing.T) *TempModTree {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "modpack-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	return &TempModTree{
		Path: tmpDir,
		T:    t,
	}
}

// Cleanup removes the temporary tree
func (r *TempModTree) Cleanup() {
	r.T.Helper()
	if err := os.RemoveAll(r.Path); err != nil {
		r.T.Errorf("failed to cleanup temp tree: %v", err)
	}
}

// CreateFile creates a file in the tree, making parent directories as needed
func (r *TempModTree) CreateFile(name, content string) {
	r.T.Helper()
	r.WriteBytes(name, []byte(content))
}

// WriteBytes creates a file with raw content
func (r *TempModTree) WriteBytes(name string, content []byte) {
	r.T.Helper()
	path := filepath.Join(r.Path, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.T.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		r.T.Fatalf("failed to create file: %v", err)
	}
}

// CreateDir creates an (empty) directory in the tree
func (r *TempModTree) CreateDir(name string) {
	r.T.Helper()
	if err := os.MkdirAll(filepath.Join(r.Path, filepath.FromSlash(name)), 0755); err != nil {
		r.T.Fatalf("failed to create directory: %v", err)
	}
}

// CreateMod writes an info.json under dir (relative to the tree root, "" for the root itself)
func (r *TempModTree) CreateMod(dir, name, version string) string {
	r.T.Helper()
	content := fmt.Sprintf("{\n  \"name\": %q,\n  \"version\": %q\n}\n", name, version)
	r.CreateFile(filepath.ToSlash(filepath.Join(dir, "info.json")), content)
	return filepath.Join(r.Path, filepath.FromSlash(dir))
}

// MustChdir changes into dir and returns a func restoring the previous directory
func MustChdir(t *testing.T, dir string) func() {
	t.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory to %s: %v", dir, err)
	}
	return func() {
		if err := os.Chdir(oldWd); err != nil {
			t.Errorf("failed to restore directory to %s: %v", oldWd, err)
		}
	}
}

// ZipEntry is one entry read back from an archive
type ZipEntry struct {
	Name    string
	Method  uint16
	Content []byte
}

// ReadZip returns the entries of the archive at path, in archive order
func ReadZip(t *testing.T, path string) []ZipEntry {
	t.Helper()

	reader, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open zip %s: %v", path, err)
	}
	defer reader.Close()

	var entries []ZipEntry
	for _, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open entry %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read entry %s: %v", f.Name, err)
		}
		entries = append(entries, ZipEntry{Name: f.Name, Method: f.Method, Content: content})
	}
	return entries
}

// ZipNames returns the sorted entry names of the archive at path
func ZipNames(t *testing.T, path string) []string {
	t.Helper()

	var names []string
	for _, e := range ReadZip(t, path) {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}
