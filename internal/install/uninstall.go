package install

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/conn-castle/claude-kit/internal/config"
	"github.com/conn-castle/claude-kit/internal/messages"
)

// UninstallResult reports what Uninstall did.
type UninstallResult struct {
	Aborted    bool
	BackupPath string
	Removed    []string
}

// Uninstall asks for confirmation and, on a literal "yes", backs up the
// target and removes the component directories. CLAUDE.md and settings.json
// are never removed. Any other answer aborts without changes.
func (inst *Installer) Uninstall(prompt PromptFunc) (UninstallResult, error) {
	var result UninstallResult
	if prompt == nil {
		return result, fmt.Errorf(messages.InstallPromptRequired)
	}
	answer, err := prompt(fmt.Sprintf(messages.UninstallConfirmPrompt, inst.paths.TargetRoot))
	if err != nil {
		return result, err
	}
	if strings.TrimSpace(answer) != uninstallConfirmation {
		inst.reporter.Info(messages.UninstallAborted)
		result.Aborted = true
		return result, nil
	}

	backupPath, err := inst.Backup()
	if err != nil {
		return result, err
	}
	result.BackupPath = backupPath

	for _, name := range UninstallEntries() {
		path := filepath.Join(inst.paths.TargetRoot, name)
		if _, err := inst.sys.Lstat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				inst.reporter.Info(fmt.Sprintf(messages.UninstallNotPresentFmt, name))
				continue
			}
			return result, fmt.Errorf(messages.InstallFailedStatFmt, path, err)
		}
		if err := inst.sys.RemoveAll(path); err != nil {
			return result, fmt.Errorf(messages.InstallFailedRemoveFmt, path, err)
		}
		inst.log.WithField("path", path).Debug("removed component")
		inst.reporter.Success(fmt.Sprintf(messages.UninstallRemovedFmt, name))
		result.Removed = append(result.Removed, name)
	}
	inst.reporter.Info(fmt.Sprintf(messages.UninstallKeptConfigFmt, config.UserConfigFileName, config.SettingsFileName))
	return result, nil
}
