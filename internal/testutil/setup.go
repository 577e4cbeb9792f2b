// Package testutil provides fixtures shared by keyremap tests.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// Path resolves a fixture path given relative to the repository root.
// Calls t.Fatal if the fixture cannot be found.
func Path(t *testing.T, relativePath string) string {
	t.Helper()
	return resolveTestPath(t, relativePath)
}

// CopyDir copies the regular files of a fixture directory into a fresh
// temporary directory and returns its path.
//
// Example:
//
//	dir := testutil.CopyDir(t, testutil.KeymapDir)
func CopyDir(t *testing.T, relativePath string) string {
	t.Helper()

	src := resolveTestPath(t, relativePath)
	dst := t.TempDir()

	entries, err := os.ReadDir(src)
	if err != nil {
		t.Fatalf("Failed to read fixture dir: %v", err)
	}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		copyFixture(t, filepath.Join(src, e.Name()), filepath.Join(dst, e.Name()))
	}
	return dst
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// resolveTestPath attempts to find the fixture by trying multiple path resolutions.
// This handles the fact that tests may be run from different working directories.
func resolveTestPath(t *testing.T, relativePath string) string {
	t.Helper()

	// Try paths in order of likelihood
	candidates := []string{
		relativePath,                  // Direct path (from repo root)
		"../../" + relativePath,       // From package two levels deep (e.g., pkg/remap/)
		"../../../" + relativePath,    // From package three levels deep
		"../../../../" + relativePath, // From package four levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Fatalf("Fixture not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}

// copyFixture copies a file from src to dst.
// Calls t.Fatal if the copy fails.
func copyFixture(t *testing.T, src, dst string) {
	t.Helper()

	srcFile, err := os.Open(src)
	if err != nil {
		t.Fatalf("Failed to open fixture: %v", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		t.Fatalf("Failed to copy fixture: %v", copyErr)
	}
}
