// Package filesystem implements port.FileSystem on top of the OS.
package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/logging"
)

// Adapter implements port.FileSystem using the OS filesystem.
type Adapter struct{}

// New creates a new filesystem adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// GetSize returns the size of a file, or the summed size of the regular
// files below a directory. A missing path has size zero.
func (a *Adapter) GetSize(ctx context.Context, path string) (int64, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	if !info.IsDir() {
		return info.Size(), nil
	}

	var size int64
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Sockets and files removed mid-walk are common in the runtime dir.
			if errors.Is(walkErr, fs.ErrNotExist) {
				return nil
			}
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			logging.FromContext(ctx).Debug().Err(err).Str("path", p).Msg("skip unreadable file")
			return nil
		}
		size += fi.Size()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return size, nil
}

func (a *Adapter) RemoveAll(_ context.Context, path string) error {
	return os.RemoveAll(path)
}

var _ port.FileSystem = (*Adapter)(nil)
