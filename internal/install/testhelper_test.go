package install

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/claude-kit/internal/config"
	"github.com/conn-castle/claude-kit/internal/testutil"
)

// faultSystem is a test helper that allows deterministic error injection for the
// installer System interface without chmod-based permission tricks.
type faultSystem struct {
	base       System
	statErrs   map[string]error
	readErrs   map[string]error
	walkErrs   map[string]error
	mkdirErrs  map[string]error
	removeErrs map[string]error
	writeErrs  map[string]error
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:       base,
		statErrs:   map[string]error{},
		readErrs:   map[string]error{},
		walkErrs:   map[string]error{},
		mkdirErrs:  map[string]error{},
		removeErrs: map[string]error{},
		writeErrs:  map[string]error{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Lstat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Lstat(name)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *faultSystem) ReadFile(name string) ([]byte, error) {
	if err, ok := f.readErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.ReadFile(name)
}

func (f *faultSystem) Mkdir(name string, perm os.FileMode) error {
	if err, ok := f.mkdirErrs[normalizePath(name)]; ok {
		return err
	}
	return f.base.Mkdir(name, perm)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	if err, ok := f.mkdirErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.MkdirAll(path, perm)
}

func (f *faultSystem) RemoveAll(path string) error {
	if err, ok := f.removeErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.RemoveAll(path)
}

func (f *faultSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	if err, ok := f.walkErrs[normalizePath(root)]; ok {
		return err
	}
	return f.base.WalkDir(root, fn)
}

func (f *faultSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	if err, ok := f.writeErrs[normalizePath(filename)]; ok {
		return err
	}
	return f.base.WriteFileAtomic(filename, data, perm)
}

func (f *faultSystem) Readlink(name string) (string, error) {
	if err, ok := f.readErrs[normalizePath(name)]; ok {
		return "", err
	}
	return f.base.Readlink(name)
}

func (f *faultSystem) Symlink(oldname string, newname string) error {
	if err, ok := f.writeErrs[normalizePath(newname)]; ok {
		return err
	}
	return f.base.Symlink(oldname, newname)
}

func (f *faultSystem) EvalSymlinks(path string) (string, error) {
	if err, ok := f.statErrs[normalizePath(path)]; ok {
		return "", err
	}
	return f.base.EvalSymlinks(path)
}

// recordingReporter captures reported lines by kind.
type recordingReporter struct {
	successes []string
	warnings  []string
	infos     []string
}

func (r *recordingReporter) Success(message string) { r.successes = append(r.successes, message) }
func (r *recordingReporter) Warning(message string) { r.warnings = append(r.warnings, message) }
func (r *recordingReporter) Info(message string)    { r.infos = append(r.infos, message) }

// fixedClock returns a clock that advances one second per call.
func fixedClock() func() time.Time {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	return func() time.Time {
		current := now
		now = now.Add(time.Second)
		return current
	}
}

type fixture struct {
	source   string
	target   string
	sys      *faultSystem
	reporter *recordingReporter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		source:   testutil.WriteBundle(t),
		target:   filepath.Join(t.TempDir(), ".claude"),
		sys:      newFaultSystem(RealSystem{}),
		reporter: &recordingReporter{},
	}
}

func (fx *fixture) installer(t *testing.T) *Installer {
	t.Helper()
	inst, err := New(Options{
		Paths:    config.NewPaths(fx.source, fx.target),
		System:   fx.sys,
		Reporter: fx.reporter,
		Now:      fixedClock(),
	})
	require.NoError(t, err)
	return inst
}

// targetFiles snapshots the target tree without the backups directory.
func (fx *fixture) targetFiles(t *testing.T) map[string]string {
	t.Helper()
	files := testutil.TreeSnapshot(t, fx.target)
	for rel := range files {
		if strings.HasPrefix(rel, config.BackupsDirName+"/") {
			delete(files, rel)
		}
	}
	return files
}

// backupDirs lists the snapshot directory names under the backups directory.
func (fx *fixture) backupDirs(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(fx.target, config.BackupsDirName))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func errInjected(what string) error {
	return fmt.Errorf("injected %s failure", what)
}
