// Package lock provides advisory file locks shared between processes.
package lock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

const (
	lockDirPerm  = 0o755
	lockFilePerm = 0o600
	retryDelay   = 20 * time.Millisecond
)

// ErrHeld is returned by TryAcquire when another process holds the lock.
var ErrHeld = errors.New("lock already held")

// File is an exclusive flock on a file.
type File struct {
	f    *os.File
	path string
}

// TryAcquire takes the lock without waiting.
func TryAcquire(path string) (*File, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, fmt.Errorf("%w: %s", ErrHeld, path)
		}
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	return &File{f: f, path: path}, nil
}

// Acquire waits for the lock until ctx is done.
func Acquire(ctx context.Context, path string) (*File, error) {
	for {
		l, err := TryAcquire(path)
		if err == nil {
			return l, nil
		}
		if !errors.Is(err, ErrHeld) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for %s: %w", path, ctx.Err())
		case <-time.After(retryDelay):
		}
	}
}

func open(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), lockDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, lockFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}
	return f, nil
}

// WritePID records the current process id in the lock file.
func (l *File) WritePID() error {
	if err := l.f.Truncate(0); err != nil {
		return err
	}
	_, err := l.f.WriteAt([]byte(fmt.Sprintf("%d\n", os.Getpid())), 0)
	return err
}

// Path returns the lock file path.
func (l *File) Path() string { return l.path }

// Release unlocks and closes the file. The file itself is left in place.
func (l *File) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	_ = unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
	err := l.f.Close()
	l.f = nil
	return err
}
