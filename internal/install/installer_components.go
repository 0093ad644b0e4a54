package install

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/conn-castle/claude-kit/internal/fsutil"
	"github.com/conn-castle/claude-kit/internal/messages"
)

// InstallComponent copies the component's source directory over the
// same-named target directory. A component absent from the source bundle is
// reported as a warning and returned with Missing set.
func (inst *Installer) InstallComponent(c Component) (ComponentResult, error) {
	result := ComponentResult{Name: c.Name}
	src := filepath.Join(inst.paths.SourceRoot, c.Name)
	dst := filepath.Join(inst.paths.TargetRoot, c.Name)

	present, err := inst.sourceDirExists(src)
	if err != nil {
		return result, err
	}
	if !present {
		inst.reporter.Warning(fmt.Sprintf(messages.InstallComponentMissingFmt, c.Name))
		result.Missing = true
		return result, nil
	}

	if err := inst.sys.MkdirAll(dst, 0o755); err != nil {
		return result, fmt.Errorf(messages.InstallCreateDirFailedFmt, dst, err)
	}
	files, err := fsutil.CopyTree(inst.sys, src, dst, c.skip)
	if err != nil {
		return result, fmt.Errorf(messages.InstallFailedCopyFmt, src, dst, err)
	}
	result.Files = files
	inst.log.WithField("component", c.Name).WithField("files", files).Debug("installed component")
	inst.reporter.Success(fmt.Sprintf(messages.InstallComponentInstalledFmt, c.Name, files))
	return result, nil
}

// InstallUserConfig copies the bundled user-level CLAUDE.md into the target.
// It reports false when the bundle has no template.
func (inst *Installer) InstallUserConfig() (bool, error) {
	src := filepath.Join(inst.paths.SourceRoot, filepath.FromSlash(userConfigSourceRel))
	installed, err := inst.copySingleton(src, inst.paths.UserConfigPath)
	if err != nil {
		return false, err
	}
	if !installed {
		inst.reporter.Warning(fmt.Sprintf(messages.InstallUserConfigMissingFmt, userConfigSourceRel))
		return false, nil
	}
	inst.reporter.Success(messages.InstallUserConfigInstalled)
	return true, nil
}

// InstallMCPExample copies the bundled MCP server configuration to
// mcp-servers.example.json. The live MCP configuration is never touched.
func (inst *Installer) InstallMCPExample() (bool, error) {
	src := filepath.Join(inst.paths.SourceRoot, filepath.FromSlash(mcpSourceRel))
	installed, err := inst.copySingleton(src, inst.paths.MCPExamplePath)
	if err != nil || !installed {
		return false, err
	}
	inst.reporter.Success(messages.InstallMCPExampleInstalled)
	return true, nil
}

// copySingleton copies one source file when it exists and reports whether it did.
func (inst *Installer) copySingleton(src string, dst string) (bool, error) {
	present, err := inst.sourceFileExists(src)
	if err != nil || !present {
		return false, err
	}
	if err := fsutil.CopyFile(inst.sys, src, dst); err != nil {
		return false, fmt.Errorf(messages.InstallFailedCopyFmt, src, dst, err)
	}
	inst.log.WithField("path", dst).Debug("copied file")
	return true, nil
}

func (inst *Installer) sourceDirExists(path string) (bool, error) {
	info, err := inst.sys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.InstallFailedStatFmt, path, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf(messages.InstallNotDirFmt, path)
	}
	return true, nil
}

func (inst *Installer) sourceFileExists(path string) (bool, error) {
	info, err := inst.sys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.InstallFailedStatFmt, path, err)
	}
	if !info.Mode().IsRegular() {
		return false, fmt.Errorf(messages.InstallNotRegularFileFmt, path)
	}
	return true, nil
}
