package install

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/conn-castle/claude-kit/internal/config"
	"github.com/conn-castle/claude-kit/internal/fsutil"
	"github.com/conn-castle/claude-kit/internal/messages"
)

// InstallHooks installs the bundled hooks configuration. When settings.json
// is absent the hooks become settings.json. When it exists with different
// content it is left untouched: the hooks are written to hooks.json.example
// and a diff is shown so the operator can merge by hand.
func (inst *Installer) InstallHooks() (HooksOutcome, error) {
	src := filepath.Join(inst.paths.SourceRoot, filepath.FromSlash(hooksSourceRel))
	present, err := inst.sourceFileExists(src)
	if err != nil {
		return HooksSkipped, err
	}
	if !present {
		inst.log.WithField("path", src).Debug("no hooks in source bundle")
		return HooksSkipped, nil
	}
	hooks, err := inst.sys.ReadFile(src)
	if err != nil {
		return HooksSkipped, fmt.Errorf(messages.InstallFailedReadFmt, src, err)
	}

	settingsPath := inst.paths.SettingsPath
	current, err := inst.sys.ReadFile(settingsPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return HooksSkipped, fmt.Errorf(messages.InstallFailedReadFmt, settingsPath, err)
		}
		if err := fsutil.CopyFile(inst.sys, src, settingsPath); err != nil {
			return HooksSkipped, fmt.Errorf(messages.InstallFailedCopyFmt, src, settingsPath, err)
		}
		inst.reporter.Success(messages.InstallHooksInstalled)
		return HooksInstalled, nil
	}

	if bytes.Equal(current, hooks) {
		inst.reporter.Info(messages.InstallHooksUnchanged)
		return HooksUnchanged, nil
	}

	examplePath := inst.paths.HooksExamplePath
	if err := fsutil.CopyFile(inst.sys, src, examplePath); err != nil {
		return HooksSkipped, fmt.Errorf(messages.InstallFailedCopyFmt, src, examplePath, err)
	}
	inst.reporter.Warning(fmt.Sprintf(messages.InstallHooksExampleFmt, examplePath))

	preview := renderTruncatedUnifiedDiff(config.SettingsFileName, config.HooksExampleFileName, string(current), string(hooks), inst.diffMaxLines)
	if preview.Truncated {
		inst.log.WithField("limit", inst.diffMaxLines).Debug("settings.json diff truncated")
	}
	if len(preview.Lines) > 0 {
		inst.reporter.Info(messages.InstallHooksDiffHeader)
		for _, line := range preview.Lines {
			inst.reporter.Info(fmt.Sprintf(messages.InstallDiffLineFmt, line))
		}
	}
	return HooksExample, nil
}
