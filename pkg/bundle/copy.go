package bundle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

type copyStats struct {
	dir   bool
	files int
	bytes int64
}

func (s copyStats) kind() AssetKind {
	if s.dir {
		return DirectoryAsset
	}
	return FileAsset
}

// copyTree copies a file, or mirrors a directory recursively.
//
// Existing files at the destination are replaced, existing directories
// are merged into. Symbolic links are followed.
func copyTree(fs afero.Fs, source, destination string) (copyStats, error) {
	c := &treeCopier{fs: fs, root: destination}
	err := c.copy(source, destination)
	return c.stats, err
}

type treeCopier struct {
	fs    afero.Fs
	root  string
	stats copyStats
}

func (c *treeCopier) copy(source, destination string) error {
	info, err := c.fs.Stat(source)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		n := info.Size()
		if !sameFile(c.fs, source, destination) {
			if n, err = copyFile(c.fs, source, destination, info.Mode()); err != nil {
				return err
			}
		}
		c.stats.files++
		c.stats.bytes += n
		return nil
	}

	if destination == c.root {
		c.stats.dir = true
	}
	if sameFile(c.fs, source, destination) {
		return nil
	}
	if err = c.fs.MkdirAll(destination, dirMode); err != nil {
		return err
	}
	children, err := afero.ReadDir(c.fs, source)
	if err != nil {
		return err
	}
	for _, child := range children {
		childSource := filepath.Join(source, child.Name())
		if sameFile(c.fs, childSource, c.root) {
			// the bundle lives inside the copied directory
			continue
		}
		if err = c.copy(childSource, filepath.Join(destination, child.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(fs afero.Fs, source, destination string, mode os.FileMode) (int64, error) {
	in, err := fs.Open(source)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = in.Close()
	}()

	// replace rather than truncate: a read-only copy left by a previous run must not fail the copy
	if existing, err := fs.Stat(destination); err == nil {
		if existing.IsDir() {
			return 0, fmt.Errorf("copy %q: destination %q is a directory", source, destination)
		}
		if err := fs.Remove(destination); err != nil {
			return 0, err
		}
	}

	out, err := fs.OpenFile(destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, err
	}
	return n, out.Close()
}

// sameFile tells if two paths designate the same file or directory
func sameFile(fs afero.Fs, a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}

	infoA, err := fs.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := fs.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}
