// Package fsutil holds the file writing and tree copying helpers shared by the
// backup manager and the installer.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/claude-kit/internal/messages"
)

// FS is the subset of filesystem operations the copy helpers need.
type FS interface {
	Lstat(name string) (os.FileInfo, error)
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
	WalkDir(root string, fn fs.WalkDirFunc) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	Readlink(name string) (string, error)
	Symlink(oldname string, newname string) error
	EvalSymlinks(path string) (string, error)
}

// SkipFunc reports whether a slash-separated path relative to the copy root is skipped.
type SkipFunc func(rel string) bool

// WriteFileAtomic writes data to a temp file next to filename and renames it into place.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, filename); err != nil {
		cleanup()
		return err
	}
	return nil
}

// CopyFile copies a regular file from src to dst, creating parent directories
// and keeping the source permission bits. An existing dst is replaced.
func CopyFile(sys FS, src string, dst string) error {
	info, err := sys.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf(messages.InstallNotRegularFileFmt, src)
	}
	data, err := sys.ReadFile(src)
	if err != nil {
		return err
	}
	if err := sys.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return sys.WriteFileAtomic(dst, data, info.Mode().Perm())
}

// CopyLink recreates the symlink src at dst with the same link text.
// An existing symlink at dst is replaced; any other existing entry is an error.
func CopyLink(sys FS, src string, dst string) error {
	link, err := sys.Readlink(src)
	if err != nil {
		return err
	}
	if err := sys.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	info, err := sys.Lstat(dst)
	switch {
	case err == nil && info.Mode()&fs.ModeSymlink != 0:
		if err := sys.RemoveAll(dst); err != nil {
			return err
		}
	case err == nil:
		return fmt.Errorf(messages.InstallNotSymlinkFmt, dst)
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	return sys.Symlink(link, dst)
}

// CopyTree copies every file under src into dst and returns the number of
// entries copied. Same-named files in dst are overwritten; other dst entries
// are left alone. skip may be nil and only applies below src itself.
//
// Symlinked directories, src included, are followed. A link that points at a
// directory already being copied, or at nothing, is recreated as a link.
func CopyTree(sys FS, src string, dst string, skip SkipFunc) (int, error) {
	c := &treeCopier{sys: sys, skip: skip}
	err := c.copyDir(src, dst, nil, true)
	return c.count, err
}

type treeCopier struct {
	sys   FS
	skip  SkipFunc
	count int
}

// copyDir walks the resolved form of src. active holds the resolved
// directories of the walks in progress, outermost first.
func (c *treeCopier) copyDir(src string, dst string, active []string, applySkip bool) error {
	root, err := c.sys.EvalSymlinks(src)
	if err != nil {
		return err
	}
	active = append(active[:len(active):len(active)], root)
	return c.sys.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return c.sys.MkdirAll(dst, 0o755)
		}
		if applySkip && c.skip != nil && c.skip(filepath.ToSlash(rel)) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return c.sys.MkdirAll(target, 0o755)
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return c.copySymlink(path, target, append(active[:len(active):len(active)], filepath.Dir(path)))
		}
		if err := CopyFile(c.sys, path, target); err != nil {
			return err
		}
		c.count++
		return nil
	})
}

func (c *treeCopier) copySymlink(path string, target string, chain []string) error {
	info, err := c.sys.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return c.copyLink(path, target)
	}
	if !info.IsDir() {
		if err := CopyFile(c.sys, path, target); err != nil {
			return err
		}
		c.count++
		return nil
	}
	resolved, err := c.sys.EvalSymlinks(path)
	if err != nil {
		return err
	}
	for _, dir := range chain {
		if isWithin(resolved, dir) {
			return c.copyLink(path, target)
		}
	}
	return c.copyDir(path, target, chain[:len(chain)-1], false)
}

func (c *treeCopier) copyLink(path string, target string) error {
	if err := CopyLink(c.sys, path, target); err != nil {
		return err
	}
	c.count++
	return nil
}

// isWithin reports whether path is dir or lies below it.
func isWithin(dir string, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
