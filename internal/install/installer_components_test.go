package install

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/claude-kit/internal/testutil"
)

func TestInstallComponentCopiesNestedTree(t *testing.T) {
	fx := newFixture(t)

	result, err := fx.installer(t).InstallComponent(Skills)
	require.NoError(t, err)

	assert.Equal(t, ComponentResult{Name: "skills", Files: 2}, result)
	assert.Equal(t, "# backend\n", testutil.ReadFile(t, fx.target, "skills/patterns/backend.md"))
	assert.False(t, testutil.Exists(t, fx.target, "skills/languages"))
	assert.Equal(t, []string{"Installed skills (2 files)"}, fx.reporter.successes)
}

func TestInstallComponentOverwritesSameNamedFiles(t *testing.T) {
	fx := newFixture(t)
	testutil.WriteFile(t, fx.target, "agents/planner.md", "stale\n")

	_, err := fx.installer(t).InstallComponent(Agents)
	require.NoError(t, err)
	assert.Equal(t, "# planner\n", testutil.ReadFile(t, fx.target, "agents/planner.md"))
}

func TestInstallComponentFollowsSymlinkedDirectories(t *testing.T) {
	fx := newFixture(t)
	shared := t.TempDir()
	testutil.WriteFile(t, shared, "linked.md", "# linked\n")
	require.NoError(t, os.Symlink(shared, filepath.Join(fx.source, "rules", "shared")))

	result, err := fx.installer(t).InstallComponent(Rules)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Files)
	assert.Equal(t, "# linked\n", testutil.ReadFile(t, fx.target, "rules/shared/linked.md"))
}

func TestInstallComponentFollowsSymlinkedComponentRoot(t *testing.T) {
	fx := newFixture(t)
	dotfiles := t.TempDir()
	testutil.WriteFile(t, dotfiles, "reviewer.md", "# reviewer\n")
	require.NoError(t, os.RemoveAll(filepath.Join(fx.source, "agents")))
	require.NoError(t, os.Symlink(dotfiles, filepath.Join(fx.source, "agents")))

	result, err := fx.installer(t).InstallComponent(Agents)
	require.NoError(t, err)

	assert.Equal(t, ComponentResult{Name: "agents", Files: 1}, result)
	assert.Equal(t, "# reviewer\n", testutil.ReadFile(t, fx.target, "agents/reviewer.md"))
}

func TestApplyBacksUpSymlinkedTargetBeforeOverwriting(t *testing.T) {
	fx := newFixture(t)
	dotfiles := t.TempDir()
	testutil.WriteFile(t, dotfiles, "planner.md", "my planner\n")
	require.NoError(t, os.MkdirAll(fx.target, 0o755))
	require.NoError(t, os.Symlink(dotfiles, filepath.Join(fx.target, "agents")))

	result, err := fx.installer(t).Apply(Plan{Agents: true})
	require.NoError(t, err)

	require.NotEmpty(t, result.BackupPath)
	assert.Equal(t, "my planner\n", testutil.ReadFile(t, result.BackupPath, "agents/planner.md"))
	assert.Equal(t, "# planner\n", testutil.ReadFile(t, dotfiles, "planner.md"))
}

func TestApplyWithDanglingUserConfigLink(t *testing.T) {
	fx := newFixture(t)
	moved := filepath.Join(t.TempDir(), "CLAUDE.md")
	require.NoError(t, os.MkdirAll(fx.target, 0o755))
	require.NoError(t, os.Symlink(moved, filepath.Join(fx.target, "CLAUDE.md")))

	result, err := fx.installer(t).Apply(Plan{UserConfig: true})
	require.NoError(t, err)

	link, err := os.Readlink(filepath.Join(result.BackupPath, "CLAUDE.md"))
	require.NoError(t, err)
	assert.Equal(t, moved, link)
	assert.Equal(t, testutil.BundleUserConfig, testutil.ReadFile(t, fx.target, "CLAUDE.md"))
}

func TestInstallComponentSourceNotDirectory(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, os.RemoveAll(filepath.Join(fx.source, "rules")))
	testutil.WriteFile(t, fx.source, "rules", "not a directory")

	_, err := fx.installer(t).InstallComponent(Rules)
	require.Error(t, err)
}

func TestInstallComponentStatFailure(t *testing.T) {
	fx := newFixture(t)
	src := filepath.Join(fx.source, "agents")
	fx.sys.statErrs[src] = errInjected("stat")

	_, err := fx.installer(t).InstallComponent(Agents)
	require.ErrorIs(t, err, fx.sys.statErrs[src])
}

func TestInstallComponentWalkFailure(t *testing.T) {
	fx := newFixture(t)
	src := filepath.Join(fx.source, "agents")
	fx.sys.walkErrs[src] = errInjected("walk")

	_, err := fx.installer(t).InstallComponent(Agents)
	require.ErrorIs(t, err, fx.sys.walkErrs[src])
}

func TestInstallUserConfigAndMCPExample(t *testing.T) {
	fx := newFixture(t)
	inst := fx.installer(t)

	ok, err := inst.InstallUserConfig()
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = inst.InstallMCPExample()
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, testutil.BundleUserConfig, testutil.ReadFile(t, fx.target, "CLAUDE.md"))
	assert.Equal(t, testutil.BundleMCP, testutil.ReadFile(t, fx.target, "mcp-servers.example.json"))
	assert.False(t, testutil.Exists(t, fx.target, "mcp-servers.json"))
}

func TestInstallMCPExampleMissingIsSilent(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, os.RemoveAll(filepath.Join(fx.source, "mcp-configs")))

	ok, err := fx.installer(t).InstallMCPExample()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, fx.reporter.warnings)
}
