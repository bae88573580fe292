package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const defaultLogFileName = "selsearch.log"

// LogRotator is an io.Writer that rolls its file over once it reaches maxSize.
type LogRotator struct {
	mu          sync.Mutex
	dir         string
	name        string
	maxSize     int64
	maxAge      time.Duration
	maxBackups  int
	compress    bool
	file        *os.File
	currentSize int64
}

// NewLogRotator opens (or creates) dir/name for appending.
func NewLogRotator(dir, name string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) (*LogRotator, error) {
	if name == "" {
		name = defaultLogFileName
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	r := &LogRotator{
		dir:        dir,
		name:       name,
		maxSize:    int64(maxSizeMB) << 20,
		maxAge:     time.Duration(maxAgeDays) * 24 * time.Hour,
		maxBackups: maxBackups,
		compress:   compress,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the active log file.
func (r *LogRotator) Path() string {
	return filepath.Join(r.dir, r.name)
}

func (r *LogRotator) open() error {
	if info, err := os.Stat(r.Path()); err == nil {
		r.currentSize = info.Size()
	} else {
		r.currentSize = 0
	}

	file, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	r.file = nil

	backup := fmt.Sprintf("%s.%s", r.Path(), time.Now().Format("2006-01-02-15-04-05.000"))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress %s: %v\n", backup, err)
		} else if err := os.Remove(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove %s: %v\n", backup, err)
		}
	}

	r.prune()
	return r.open()
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}

// prune drops backups older than maxAge, then the oldest ones beyond maxBackups.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	now := time.Now()
	var backups []os.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), r.name+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			_ = os.Remove(filepath.Join(r.dir, entry.Name()))
			continue
		}
		backups = append(backups, info)
	}

	if r.maxBackups <= 0 || len(backups) <= r.maxBackups {
		return
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].ModTime().Before(backups[j].ModTime())
	})
	for _, info := range backups[:len(backups)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.dir, info.Name()))
	}
}

// Close closes the active file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
