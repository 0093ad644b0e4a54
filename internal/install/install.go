package install

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/conn-castle/claude-kit/internal/backup"
	"github.com/conn-castle/claude-kit/internal/config"
	"github.com/conn-castle/claude-kit/internal/messages"
)

// Reporter receives operator-facing progress lines.
type Reporter interface {
	Success(message string)
	Warning(message string)
	Info(message string)
}

// Options controls installer behavior.
type Options struct {
	Paths        config.Paths
	System       System
	Reporter     Reporter
	Log          *logrus.Entry
	DiffMaxLines int
	// Now stamps backup snapshots; defaults to time.Now.
	Now func() time.Time
}

// Installer provisions the target directory from the source bundle.
// One Installer serves one invocation: it takes at most one backup snapshot.
type Installer struct {
	paths        config.Paths
	sys          System
	reporter     Reporter
	log          *logrus.Entry
	diffMaxLines int
	backups      *backup.Manager
	backedUp     bool
	backupPath   string
}

// ComponentResult reports the outcome of one directory component.
type ComponentResult struct {
	Name    string
	Files   int
	Missing bool
}

// HooksOutcome describes what InstallHooks did.
type HooksOutcome int

const (
	// HooksSkipped means no hooks were requested or the bundle has none.
	HooksSkipped HooksOutcome = iota
	// HooksInstalled means settings.json was created from the bundled hooks.
	HooksInstalled
	// HooksUnchanged means settings.json already equals the bundled hooks.
	HooksUnchanged
	// HooksExample means settings.json existed and the hooks went to hooks.json.example.
	HooksExample
)

// Result summarizes an Apply call.
type Result struct {
	BackupPath string
	Components []ComponentResult
	Languages  []string
	UserConfig bool
	Hooks      HooksOutcome
	MCPExample bool
}

// New validates opts and returns an Installer.
func New(opts Options) (*Installer, error) {
	if strings.TrimSpace(opts.Paths.SourceRoot) == "" {
		return nil, fmt.Errorf(messages.InstallSourceRootRequired)
	}
	if strings.TrimSpace(opts.Paths.TargetRoot) == "" {
		return nil, fmt.Errorf(messages.InstallTargetRootRequired)
	}
	if opts.System == nil {
		return nil, fmt.Errorf(messages.InstallSystemRequired)
	}
	if opts.Reporter == nil {
		return nil, fmt.Errorf(messages.InstallReporterRequired)
	}
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Installer{
		paths:        opts.Paths,
		sys:          opts.System,
		reporter:     opts.Reporter,
		log:          log,
		diffMaxLines: normalizeDiffMaxLines(opts.DiffMaxLines),
		backups: backup.New(backup.Options{
			TargetRoot: opts.Paths.TargetRoot,
			BackupRoot: opts.Paths.BackupRoot,
			Entries:    WatchedEntries(),
			System:     opts.System,
			Now:        opts.Now,
			Log:        log.WithField("step", "backup"),
		}),
	}, nil
}

// Apply runs a plan: ensure the target root, back up, then install each
// selected part in a fixed order. Missing source parts are warnings; any
// filesystem failure aborts immediately.
func (inst *Installer) Apply(plan Plan) (Result, error) {
	var result Result
	if err := inst.EnsureTarget(); err != nil {
		return result, err
	}
	backupPath, err := inst.Backup()
	if err != nil {
		return result, err
	}
	result.BackupPath = backupPath

	for _, c := range plan.Components() {
		res, err := inst.InstallComponent(c)
		if err != nil {
			return result, err
		}
		result.Components = append(result.Components, res)
	}

	if plan.Languages.Len() > 0 {
		installed, err := inst.InstallLanguages(plan.Languages.Items())
		if err != nil {
			return result, err
		}
		result.Languages = installed
	}
	if plan.UserConfig {
		if result.UserConfig, err = inst.InstallUserConfig(); err != nil {
			return result, err
		}
	}
	if plan.Hooks {
		if result.Hooks, err = inst.InstallHooks(); err != nil {
			return result, err
		}
	}
	if plan.MCPExample {
		if result.MCPExample, err = inst.InstallMCPExample(); err != nil {
			return result, err
		}
	}
	return result, nil
}

// EnsureTarget creates the target root when missing.
func (inst *Installer) EnsureTarget() error {
	root := inst.paths.TargetRoot
	if err := inst.sys.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf(messages.InstallCreateDirFailedFmt, root, err)
	}
	info, err := inst.sys.Stat(root)
	if err != nil {
		return fmt.Errorf(messages.InstallFailedStatFmt, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf(messages.InstallNotDirFmt, root)
	}
	return nil
}

// Backup takes the invocation's snapshot. Later calls return the first result
// without creating another snapshot.
func (inst *Installer) Backup() (string, error) {
	if inst.backedUp {
		return inst.backupPath, nil
	}
	path, err := inst.backups.Snapshot()
	if err != nil {
		return "", err
	}
	inst.backedUp = true
	inst.backupPath = path
	if path != "" {
		inst.reporter.Success(fmt.Sprintf(messages.BackupCreatedFmt, path))
	}
	return path, nil
}
