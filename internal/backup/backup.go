// Package backup snapshots existing target entries into a timestamped
// directory before the installer overwrites or removes them.
package backup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/conn-castle/claude-kit/internal/fsutil"
	"github.com/conn-castle/claude-kit/internal/messages"
)

// TimestampLayout names snapshot directories.
const TimestampLayout = "20060102_150405"

// maxNameAttempts bounds the numeric suffixes tried when a timestamp is already taken.
const maxNameAttempts = 1000

// System abstracts the filesystem operations needed to take a snapshot.
type System interface {
	fsutil.FS
	Mkdir(name string, perm os.FileMode) error
}

// Options configures a Manager.
type Options struct {
	// TargetRoot holds the watched entries.
	TargetRoot string
	// BackupRoot receives one subdirectory per snapshot.
	BackupRoot string
	// Entries are names relative to TargetRoot.
	Entries []string
	System  System
	// Now defaults to time.Now.
	Now func() time.Time
	Log *logrus.Entry
}

// Manager creates backup snapshots. Snapshots are write-once: the manager
// never modifies or prunes an existing snapshot directory. A snapshot whose
// copy fails is removed before the error is returned.
type Manager struct {
	targetRoot string
	backupRoot string
	entries    []string
	sys        System
	now        func() time.Time
	log        *logrus.Entry
}

// New returns a Manager for opts.
func New(opts Options) *Manager {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Manager{
		targetRoot: opts.TargetRoot,
		backupRoot: opts.BackupRoot,
		entries:    append([]string(nil), opts.Entries...),
		sys:        opts.System,
		now:        now,
		log:        log,
	}
}

// Snapshot copies every watched entry that exists into a new directory under
// the backup root and returns its path. It returns "" when nothing exists.
func (m *Manager) Snapshot() (string, error) {
	existing, err := m.existingEntries()
	if err != nil {
		return "", err
	}
	if len(existing) == 0 {
		m.log.Debug("no watched entries present; skipping backup")
		return "", nil
	}

	dir, err := m.createSnapshotDir()
	if err != nil {
		return "", err
	}
	for _, name := range existing {
		src := filepath.Join(m.targetRoot, name)
		dst := filepath.Join(dir, name)
		if err := m.copyEntry(src, dst); err != nil {
			if rmErr := m.sys.RemoveAll(dir); rmErr != nil {
				m.log.WithError(rmErr).WithField("dir", dir).Warn("failed to remove incomplete backup")
			}
			return "", fmt.Errorf(messages.InstallFailedCopyFmt, src, dst, err)
		}
		m.log.WithField("entry", name).Debug("backed up entry")
	}
	return dir, nil
}

func (m *Manager) existingEntries() ([]string, error) {
	var existing []string
	for _, name := range m.entries {
		path := filepath.Join(m.targetRoot, name)
		if _, err := m.sys.Lstat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf(messages.InstallFailedStatFmt, path, err)
		}
		existing = append(existing, name)
	}
	return existing, nil
}

// createSnapshotDir creates backups/<timestamp>, appending -1, -2, ... when the
// name is taken so an existing snapshot is never reused.
func (m *Manager) createSnapshotDir() (string, error) {
	if err := m.sys.MkdirAll(m.backupRoot, 0o755); err != nil {
		return "", fmt.Errorf(messages.BackupCreateDirFailedFmt, m.backupRoot, err)
	}
	base := m.now().Format(TimestampLayout)
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := base
		if attempt > 0 {
			name = base + "-" + strconv.Itoa(attempt)
		}
		dir := filepath.Join(m.backupRoot, name)
		err := m.sys.Mkdir(dir, 0o755)
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf(messages.BackupCreateDirFailedFmt, dir, err)
		}
	}
	return "", fmt.Errorf(messages.BackupNameExhaustedFmt, base)
}

// copyEntry copies one watched entry. A symlinked entry is backed up by
// content; a dangling one is kept as a link.
func (m *Manager) copyEntry(src string, dst string) error {
	info, err := m.sys.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		m.log.WithField("entry", src).Debug("backing up dangling symlink as a link")
		return fsutil.CopyLink(m.sys, src, dst)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		_, err := fsutil.CopyTree(m.sys, src, dst, nil)
		return err
	}
	return fsutil.CopyFile(m.sys, src, dst)
}
