// Package testutil builds source bundle and target directory fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// BundleLanguages lists the language skill files written by WriteBundle.
var BundleLanguages = []string{"typescript", "python", "go", "rust"}

// BundleHooks is the hooks.json content written by WriteBundle.
const BundleHooks = "{\n  \"hooks\": {\n    \"PreToolUse\": []\n  }\n}\n"

// BundleMCP is the mcp-servers.json content written by WriteBundle.
const BundleMCP = "{\n  \"mcpServers\": {}\n}\n"

// BundleUserConfig is the examples/user-CLAUDE.md content written by WriteBundle.
const BundleUserConfig = "# User configuration\n"

// WriteFile writes content to root/rel, creating parent directories.
// rel is slash-separated.
func WriteFile(t *testing.T, root string, rel string, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of root/rel or fails the test.
func ReadFile(t *testing.T, root string, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

// Exists reports whether root/rel exists.
func Exists(t *testing.T, root string, rel string) bool {
	t.Helper()
	_, err := os.Lstat(filepath.Join(root, filepath.FromSlash(rel)))
	if err == nil {
		return true
	}
	if os.IsNotExist(err) {
		return false
	}
	t.Fatalf("lstat %s: %v", rel, err)
	return false
}

// WriteBundle creates a complete source bundle under a new temp directory and returns its root.
func WriteBundle(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"agents/planner.md":            "# planner\n",
		"agents/reviewer.md":           "# reviewer\n",
		"commands/plan.md":             "# /plan\n",
		"skills/testing.md":            "# testing\n",
		"skills/patterns/backend.md":   "# backend\n",
		"rules/style.md":               "# style\n",
		"hooks/hooks.json":             BundleHooks,
		"mcp-configs/mcp-servers.json": BundleMCP,
		"examples/user-CLAUDE.md":      BundleUserConfig,
	}
	for rel, content := range files {
		WriteFile(t, root, rel, content)
	}
	for _, lang := range BundleLanguages {
		WriteFile(t, root, "skills/languages/"+lang+".md", "# "+lang+"\n")
	}
	return root
}

// TreeSnapshot maps every regular file under root, by slash-separated relative path, to its content.
func TreeSnapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return out
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
