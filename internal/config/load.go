package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/claude-kit/internal/messages"
)

// File is the optional TOML configuration file.
type File struct {
	Paths PathsSection `toml:"paths"`

	// dir is the directory holding the file; relative paths in it resolve against dir.
	dir string
}

// PathsSection overrides the default source and target roots.
type PathsSection struct {
	Source string `toml:"source"`
	Target string `toml:"target"`
}

// Overrides carries path values supplied on the command line.
type Overrides struct {
	Source string
	Target string
}

// Load reads and parses the config file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	cfg.dir = filepath.Dir(abs)
	return cfg, nil
}

// Parse decodes config TOML data. source is used in error messages.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte, source string) (*File, error) {
	var cfg File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, errors.New(strings.TrimSpace(strict.String())))
		}
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	return &cfg, nil
}

// Resolve builds Paths from command-line overrides, then the config file, then defaults.
// cwd is the default source root and the base for relative command-line paths.
// Relative paths from a loaded config file resolve against the file's directory.
// cfg may be nil.
func Resolve(cwd string, cfg *File, flags Overrides) (Paths, error) {
	var fromFile PathsSection
	fileBase := cwd
	if cfg != nil {
		fromFile = cfg.Paths
		if cfg.dir != "" {
			fileBase = cfg.dir
		}
	}

	value, base := pickPath(cwd, flags.Source, fileBase, fromFile.Source)
	source, err := resolvePath(base, value)
	if err != nil {
		return Paths{}, err
	}
	if source == "" {
		source = cwd
	}
	info, err := os.Stat(source)
	if err != nil {
		return Paths{}, fmt.Errorf(messages.ConfigSourceMissingFmt, source, err)
	}
	if !info.IsDir() {
		return Paths{}, fmt.Errorf(messages.ConfigSourceNotDirFmt, source)
	}

	value, base = pickPath(cwd, flags.Target, fileBase, fromFile.Target)
	target, err := resolvePath(base, value)
	if err != nil {
		return Paths{}, err
	}
	if target == "" {
		target, err = DefaultTargetRoot()
		if err != nil {
			return Paths{}, err
		}
	}
	return NewPaths(source, target), nil
}

// pickPath returns the command-line value with cwd, or else the file value with fileBase.
func pickPath(cwd string, flagValue string, fileBase string, fileValue string) (string, string) {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue, cwd
	}
	return fileValue, fileBase
}

func resolvePath(base string, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(value)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, value, err)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(base, expanded)
	}
	return filepath.Clean(expanded), nil
}
