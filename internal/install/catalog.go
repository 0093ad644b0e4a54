package install

import (
	"path"

	"github.com/conn-castle/claude-kit/internal/config"
)

// Source bundle locations, slash-separated and relative to the source root.
const (
	languagesRelDir     = "skills/languages"
	hooksSourceRel      = "hooks/hooks.json"
	mcpSourceRel        = "mcp-configs/mcp-servers.json"
	userConfigSourceRel = "examples/user-CLAUDE.md"
	languageFileExt     = ".md"
)

// Component is one named top-level directory copied from the source bundle
// to the same name under the target.
type Component struct {
	Name string
	// Exclude lists slash-separated paths, relative to the component, that are not copied.
	Exclude []string
}

// Directory components, in installation order.
var (
	Agents   = Component{Name: "agents"}
	Commands = Component{Name: "commands"}
	// Skills leaves language files to InstallLanguages so that only the
	// selected languages end up in the target.
	Skills = Component{Name: "skills", Exclude: []string{path.Base(languagesRelDir)}}
	Rules  = Component{Name: "rules"}
)

var supportedLanguages = []string{
	"typescript",
	"python",
	"go",
	"rust",
	"java",
	"csharp",
	"ruby",
	"php",
	"swift",
	"cpp",
}

// Components returns every directory component in installation order.
func Components() []Component {
	return []Component{Agents, Commands, Skills, Rules}
}

// SupportedLanguages returns the closed, ordered set of language identifiers.
func SupportedLanguages() []string {
	return append([]string(nil), supportedLanguages...)
}

// IsSupportedLanguage reports whether id is in the supported set.
func IsSupportedLanguage(id string) bool {
	for _, lang := range supportedLanguages {
		if lang == id {
			return true
		}
	}
	return false
}

// WatchedEntries returns the target entries snapshotted before any change.
func WatchedEntries() []string {
	entries := make([]string, 0, 6)
	for _, c := range Components() {
		entries = append(entries, c.Name)
	}
	return append(entries, config.UserConfigFileName, config.SettingsFileName)
}

// UninstallEntries returns the target directories removed by Uninstall.
// The user config and settings files are kept.
func UninstallEntries() []string {
	entries := make([]string, 0, 4)
	for _, c := range Components() {
		entries = append(entries, c.Name)
	}
	return entries
}

func (c Component) skip(rel string) bool {
	for _, ex := range c.Exclude {
		if rel == ex {
			return true
		}
	}
	return false
}
