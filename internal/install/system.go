package install

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conn-castle/claude-kit/internal/fsutil"
)

// System abstracts filesystem operations needed by the installer.
// Tests substitute implementations that fail on demand; the backup manager
// receives the same value, so System is a superset of backup.System.
type System interface {
	Lstat(name string) (os.FileInfo, error)
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	Mkdir(name string, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
	WalkDir(root string, fn fs.WalkDirFunc) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	Readlink(name string) (string, error)
	Symlink(oldname string, newname string) error
	EvalSymlinks(path string) (string, error)
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Lstat returns a FileInfo describing the named file without following symlinks.
func (RealSystem) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Mkdir creates a single directory and fails if it already exists.
func (RealSystem) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// WalkDir walks the file tree rooted at root.
func (RealSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// WriteFileAtomic writes data to a file atomically by writing to a temp file and renaming.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// Readlink returns the destination of the named symbolic link.
func (RealSystem) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

// Symlink creates newname as a symbolic link to oldname.
func (RealSystem) Symlink(oldname string, newname string) error {
	return os.Symlink(oldname, newname)
}

// EvalSymlinks returns path with every symbolic link resolved.
func (RealSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
