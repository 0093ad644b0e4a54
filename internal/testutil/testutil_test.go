package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBundleCreatesEveryComponent(t *testing.T) {
	root := WriteBundle(t)

	for _, rel := range []string{
		"agents/planner.md",
		"commands/plan.md",
		"skills/testing.md",
		"rules/style.md",
		"hooks/hooks.json",
		"mcp-configs/mcp-servers.json",
		"examples/user-CLAUDE.md",
	} {
		assert.True(t, Exists(t, root, rel), rel)
	}
	for _, lang := range BundleLanguages {
		assert.Equal(t, "# "+lang+"\n", ReadFile(t, root, "skills/languages/"+lang+".md"))
	}
	assert.Equal(t, BundleHooks, ReadFile(t, root, "hooks/hooks.json"))
}

func TestExistsReportsMissingPath(t *testing.T) {
	assert.False(t, Exists(t, t.TempDir(), "nope"))
}

func TestTreeSnapshotListsFilesBySlashPath(t *testing.T) {
	root := t.TempDir()
	WriteFile(t, root, "a/b/c.txt", "c")
	WriteFile(t, root, "top.txt", "top")

	assert.Equal(t, map[string]string{"a/b/c.txt": "c", "top.txt": "top"}, TreeSnapshot(t, root))
}

func TestWithWorkingDirRestoresPreviousDirectory(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()

	var inside string
	WithWorkingDir(t, dir, func() {
		inside, err = os.Getwd()
		require.NoError(t, err)
	})

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	insideResolved, err := filepath.EvalSymlinks(inside)
	require.NoError(t, err)
	assert.Equal(t, resolved, insideResolved)
}
