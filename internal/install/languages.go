package install

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conn-castle/claude-kit/internal/fsutil"
	"github.com/conn-castle/claude-kit/internal/messages"
)

// InstallLanguages copies <source>/skills/languages/<id>.md for each id, in
// order, and returns the identifiers actually installed. An empty input does
// not touch the target. Identifiers without a source file are skipped with a
// warning.
func (inst *Installer) InstallLanguages(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	srcDir := filepath.Join(inst.paths.SourceRoot, filepath.FromSlash(languagesRelDir))
	dstDir := filepath.Join(inst.paths.TargetRoot, filepath.FromSlash(languagesRelDir))
	if err := inst.sys.MkdirAll(dstDir, 0o755); err != nil {
		return nil, fmt.Errorf(messages.InstallCreateDirFailedFmt, dstDir, err)
	}

	installed := make([]string, 0, len(ids))
	for _, id := range ids {
		if !validLanguageID(id) {
			inst.reporter.Warning(fmt.Sprintf(messages.InstallInvalidLanguageFmt, id))
			continue
		}
		name := id + languageFileExt
		src := filepath.Join(srcDir, name)
		present, err := inst.sourceFileExists(src)
		if err != nil {
			return installed, err
		}
		if !present {
			inst.reporter.Warning(fmt.Sprintf(messages.InstallLanguageMissingFmt, id))
			continue
		}
		dst := filepath.Join(dstDir, name)
		if err := fsutil.CopyFile(inst.sys, src, dst); err != nil {
			return installed, fmt.Errorf(messages.InstallFailedCopyFmt, src, dst, err)
		}
		inst.log.WithField("language", id).Debug("installed language skill")
		inst.reporter.Success(fmt.Sprintf(messages.InstallLanguageInstalledFmt, id))
		installed = append(installed, id)
	}
	return installed, nil
}

// validLanguageID rejects identifiers that would resolve outside the languages directory.
func validLanguageID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}
