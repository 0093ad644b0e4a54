package install

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/claude-kit/internal/config"
	"github.com/conn-castle/claude-kit/internal/messages"
	"github.com/conn-castle/claude-kit/internal/testutil"
)

func TestNewValidatesOptions(t *testing.T) {
	paths := config.NewPaths("/src", "/dst")
	reporter := &recordingReporter{}

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{name: "source", opts: Options{Paths: config.NewPaths("", "/dst"), System: RealSystem{}, Reporter: reporter}, want: messages.InstallSourceRootRequired},
		{name: "target", opts: Options{Paths: config.NewPaths("/src", " "), System: RealSystem{}, Reporter: reporter}, want: messages.InstallTargetRootRequired},
		{name: "system", opts: Options{Paths: paths, Reporter: reporter}, want: messages.InstallSystemRequired},
		{name: "reporter", opts: Options{Paths: paths, System: RealSystem{}}, want: messages.InstallReporterRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestNewDefaultsDiffMaxLines(t *testing.T) {
	inst, err := New(Options{Paths: config.NewPaths("/src", "/dst"), System: RealSystem{}, Reporter: &recordingReporter{}})
	require.NoError(t, err)
	assert.Equal(t, DefaultDiffMaxLines, inst.diffMaxLines)
}

func TestApplyFullInstallsEverything(t *testing.T) {
	fx := newFixture(t)

	result, err := fx.installer(t).Apply(FullPlan(NewLanguageSet("go", "rust")))
	require.NoError(t, err)

	assert.Empty(t, result.BackupPath)
	assert.Equal(t, []ComponentResult{
		{Name: "agents", Files: 2},
		{Name: "commands", Files: 1},
		{Name: "skills", Files: 2},
		{Name: "rules", Files: 1},
	}, result.Components)
	assert.Equal(t, []string{"go", "rust"}, result.Languages)
	assert.True(t, result.UserConfig)
	assert.True(t, result.MCPExample)
	assert.Equal(t, HooksInstalled, result.Hooks)

	files := fx.targetFiles(t)
	assert.Equal(t, map[string]string{
		"agents/planner.md":          "# planner\n",
		"agents/reviewer.md":         "# reviewer\n",
		"commands/plan.md":           "# /plan\n",
		"skills/testing.md":          "# testing\n",
		"skills/patterns/backend.md": "# backend\n",
		"skills/languages/go.md":     "# go\n",
		"skills/languages/rust.md":   "# rust\n",
		"rules/style.md":             "# style\n",
		"CLAUDE.md":                  testutil.BundleUserConfig,
		"settings.json":              testutil.BundleHooks,
		"mcp-servers.example.json":   testutil.BundleMCP,
	}, files)
	assert.Empty(t, fx.reporter.warnings)
}

func TestApplyCoreLeavesNoLanguageEntries(t *testing.T) {
	fx := newFixture(t)

	result, err := fx.installer(t).Apply(CorePlan())
	require.NoError(t, err)

	assert.Empty(t, result.Languages)
	assert.False(t, testutil.Exists(t, fx.target, "skills/languages"))
	assert.True(t, testutil.Exists(t, fx.target, "skills/testing.md"))
}

func TestApplyTwiceIsIdempotent(t *testing.T) {
	fx := newFixture(t)
	plan := FullPlan(NewLanguageSet("python"))

	_, err := fx.installer(t).Apply(plan)
	require.NoError(t, err)
	first := fx.targetFiles(t)
	assert.Empty(t, fx.backupDirs(t))

	result, err := fx.installer(t).Apply(plan)
	require.NoError(t, err)

	assert.Equal(t, first, fx.targetFiles(t))
	assert.Equal(t, HooksUnchanged, result.Hooks)
	assert.False(t, testutil.Exists(t, fx.target, config.HooksExampleFileName))
	assert.Equal(t, []string{"20260314_092653"}, fx.backupDirs(t))
	assert.Equal(t, filepath.Join(fx.target, "backups", "20260314_092653"), result.BackupPath)
}

func TestApplyBacksUpExistingEntriesBeforeOverwriting(t *testing.T) {
	fx := newFixture(t)
	testutil.WriteFile(t, fx.target, "agents/planner.md", "# my planner\n")
	testutil.WriteFile(t, fx.target, "CLAUDE.md", "# mine\n")

	result, err := fx.installer(t).Apply(CorePlan())
	require.NoError(t, err)

	require.NotEmpty(t, result.BackupPath)
	assert.Equal(t, "# my planner\n", testutil.ReadFile(t, result.BackupPath, "agents/planner.md"))
	assert.Equal(t, "# mine\n", testutil.ReadFile(t, result.BackupPath, "CLAUDE.md"))
	assert.False(t, testutil.Exists(t, result.BackupPath, "settings.json"))
	assert.Equal(t, "# planner\n", testutil.ReadFile(t, fx.target, "agents/planner.md"))
	assert.Len(t, fx.backupDirs(t), 1)
}

func TestApplyKeepsUnrelatedTargetFiles(t *testing.T) {
	fx := newFixture(t)
	testutil.WriteFile(t, fx.target, "agents/custom.md", "# custom\n")
	testutil.WriteFile(t, fx.target, "projects/notes.txt", "notes\n")

	_, err := fx.installer(t).Apply(CorePlan())
	require.NoError(t, err)

	assert.Equal(t, "# custom\n", testutil.ReadFile(t, fx.target, "agents/custom.md"))
	assert.Equal(t, "notes\n", testutil.ReadFile(t, fx.target, "projects/notes.txt"))
}

func TestApplyCustomRulesOnly(t *testing.T) {
	fx := newFixture(t)

	result, err := fx.installer(t).Apply(Plan{Rules: true})
	require.NoError(t, err)

	assert.Equal(t, []ComponentResult{{Name: "rules", Files: 1}}, result.Components)
	assert.Equal(t, map[string]string{"rules/style.md": "# style\n"}, fx.targetFiles(t))
	assert.Equal(t, HooksSkipped, result.Hooks)
}

func TestApplyMissingComponentsWarnAndContinue(t *testing.T) {
	fx := newFixture(t)
	fx.source = t.TempDir()
	testutil.WriteFile(t, fx.source, "rules/style.md", "# style\n")

	result, err := fx.installer(t).Apply(CorePlan())
	require.NoError(t, err)

	assert.Equal(t, []ComponentResult{
		{Name: "agents", Missing: true},
		{Name: "commands", Missing: true},
		{Name: "skills", Missing: true},
		{Name: "rules", Files: 1},
	}, result.Components)
	assert.False(t, result.UserConfig)
	assert.False(t, result.MCPExample)
	assert.Equal(t, HooksSkipped, result.Hooks)
	assert.Contains(t, fx.reporter.warnings, "agents not found in source bundle, skipping")
	assert.Contains(t, fx.reporter.warnings, "User config template examples/user-CLAUDE.md not found in source bundle, skipping")
	assert.Len(t, fx.reporter.warnings, 4)
}

func TestApplyEnsureTargetFailure(t *testing.T) {
	fx := newFixture(t)
	fx.sys.mkdirErrs[fx.target] = errInjected("mkdir")

	_, err := fx.installer(t).Apply(CorePlan())
	require.Error(t, err)
	assert.ErrorIs(t, err, fx.sys.mkdirErrs[fx.target])
	assert.False(t, testutil.Exists(t, filepath.Dir(fx.target), ".claude"))
}

func TestEnsureTargetRejectsFile(t *testing.T) {
	fx := newFixture(t)
	testutil.WriteFile(t, filepath.Dir(fx.target), ".claude", "not a dir")

	err := fx.installer(t).EnsureTarget()
	require.Error(t, err)
}

func TestApplyStopsOnCopyFailure(t *testing.T) {
	fx := newFixture(t)
	failed := filepath.Join(fx.target, "commands", "plan.md")
	fx.sys.writeErrs[failed] = errInjected("write")

	result, err := fx.installer(t).Apply(CorePlan())
	require.Error(t, err)
	assert.ErrorIs(t, err, fx.sys.writeErrs[failed])
	assert.Equal(t, []ComponentResult{{Name: "agents", Files: 2}}, result.Components)
	assert.False(t, testutil.Exists(t, fx.target, "rules"))
}

func TestApplyBackupFailureStopsBeforeInstall(t *testing.T) {
	fx := newFixture(t)
	testutil.WriteFile(t, fx.target, "CLAUDE.md", "# mine\n")
	backupRoot := filepath.Join(fx.target, config.BackupsDirName)
	fx.sys.mkdirErrs[backupRoot] = errInjected("mkdir")

	_, err := fx.installer(t).Apply(CorePlan())
	require.Error(t, err)
	assert.ErrorIs(t, err, fx.sys.mkdirErrs[backupRoot])
	assert.False(t, testutil.Exists(t, fx.target, "agents"))
	assert.Equal(t, "# mine\n", testutil.ReadFile(t, fx.target, "CLAUDE.md"))
}

func TestBackupRunsOncePerInstaller(t *testing.T) {
	fx := newFixture(t)
	testutil.WriteFile(t, fx.target, "rules/style.md", "old\n")
	inst := fx.installer(t)

	first, err := inst.Backup()
	require.NoError(t, err)
	second, err := inst.Backup()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, fx.backupDirs(t), 1)
	assert.Equal(t, []string{"Backed up existing configuration to " + first}, fx.reporter.successes)
}
