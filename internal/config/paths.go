package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/claude-kit/internal/messages"
)

// Names of the target entries the installer manages outside component directories.
const (
	TargetDirName        = ".claude"
	BackupsDirName       = "backups"
	SettingsFileName     = "settings.json"
	UserConfigFileName   = "CLAUDE.md"
	HooksExampleFileName = "hooks.json.example"
	MCPExampleFileName   = "mcp-servers.example.json"
)

var homeDirFunc = homedir.Dir

// Paths holds the resolved source bundle and target installation paths.
type Paths struct {
	SourceRoot       string
	TargetRoot       string
	BackupRoot       string
	SettingsPath     string
	UserConfigPath   string
	HooksExamplePath string
	MCPExamplePath   string
}

// NewPaths returns the paths derived from a source bundle root and a target root.
func NewPaths(sourceRoot string, targetRoot string) Paths {
	return Paths{
		SourceRoot:       sourceRoot,
		TargetRoot:       targetRoot,
		BackupRoot:       filepath.Join(targetRoot, BackupsDirName),
		SettingsPath:     filepath.Join(targetRoot, SettingsFileName),
		UserConfigPath:   filepath.Join(targetRoot, UserConfigFileName),
		HooksExamplePath: filepath.Join(targetRoot, HooksExampleFileName),
		MCPExamplePath:   filepath.Join(targetRoot, MCPExampleFileName),
	}
}

// DefaultTargetRoot returns ~/.claude for the current user.
func DefaultTargetRoot() (string, error) {
	home, err := homeDirFunc()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Join(home, TargetDirName), nil
}
