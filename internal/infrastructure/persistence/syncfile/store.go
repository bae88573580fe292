// Package syncfile implements the sync storage area as a JSON document in a
// directory that a file synchronizer (Syncthing, Nextcloud, a dotfiles repo)
// replicates between machines.
package syncfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/infrastructure/lock"
	"github.com/bnema/selsearch/internal/infrastructure/persistence/feed"
	"github.com/bnema/selsearch/internal/logging"
)

const (
	// FileName is the name of the document inside the sync directory.
	FileName = "selsearch-sync.json"

	documentVersion = 1
	dirPerm         = 0o755
	filePerm        = 0o644
)

// ErrNotJSON is returned when a value written to the sync area is not JSON.
var ErrNotJSON = errors.New("sync values must be JSON")

type document struct {
	Version int                        `json:"version"`
	Items   map[string]json.RawMessage `json:"items"`
}

// Store is a port.Storage backed by a JSON file.
type Store struct {
	dir  string
	path string
	feed *feed.Feed

	mu    sync.Mutex
	known map[string][]byte
}

var _ port.Storage = (*Store)(nil)

// Open creates the directory if needed and loads the current document.
func Open(ctx context.Context, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create sync directory: %w", err)
	}
	s := &Store{
		dir:  dir,
		path: filepath.Join(dir, FileName),
		feed: feed.New(logging.WithComponent(context.WithoutCancel(ctx), "storage.sync")),
	}
	doc, err := s.read()
	if err != nil {
		s.feed.Close()
		return nil, err
	}
	s.known = itemsOf(doc)
	return s, nil
}

// Path returns the document path.
func (s *Store) Path() string { return s.path }

func (s *Store) Area() entity.StorageArea { return entity.StorageSync }

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	value, ok := doc.Items[key]
	if !ok {
		return nil, nil
	}
	return []byte(value), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("%w: %q", ErrNotJSON, key)
	}
	compact := &bytes.Buffer{}
	if err := json.Compact(compact, value); err != nil {
		return fmt.Errorf("%w: %v", ErrNotJSON, err)
	}

	return s.update(ctx, func(doc *document) {
		doc.Items[key] = json.RawMessage(compact.Bytes())
	})
}

func (s *Store) Clear(ctx context.Context) error {
	return s.update(ctx, func(doc *document) {
		clear(doc.Items)
	})
}

func (s *Store) OnChange(handler port.StorageChangeHandler) {
	s.feed.Subscribe(handler)
}

// update applies fn to the document under an inter-process lock, writes it
// atomically and publishes what changed.
func (s *Store) update(ctx context.Context, fn func(doc *document)) error {
	l, err := lock.Acquire(ctx, s.path+".lock")
	if err != nil {
		return err
	}
	defer func() { _ = l.Release() }()

	doc, err := s.read()
	if err != nil {
		return err
	}
	fn(doc)
	if err := s.write(doc); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Str("path", s.path).Int("keys", len(doc.Items)).Msg("sync document written")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.publishDiff(itemsOf(doc))
	return nil
}

// Refresh re-reads the document and publishes changes made elsewhere.
func (s *Store) Refresh(ctx context.Context) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := s.publishDiff(itemsOf(doc)); n > 0 {
		logging.FromContext(ctx).Debug().Int("changes", n).Msg("external sync changes")
	}
	return nil
}

// publishDiff must be called with s.mu held.
func (s *Store) publishDiff(next map[string][]byte) int {
	var changes []entity.StorageChange
	for _, key := range sortedKeys(s.known, next) {
		old, had := s.known[key]
		value, has := next[key]
		switch {
		case had && has && bytes.Equal(old, value):
			continue
		case had && !has:
			changes = append(changes, entity.StorageChange{Key: key, OldValue: old, Area: entity.StorageSync})
		default:
			change := entity.StorageChange{Key: key, NewValue: value, Area: entity.StorageSync}
			if had {
				change.OldValue = old
			}
			changes = append(changes, change)
		}
	}
	s.known = next
	s.feed.Publish(changes...)
	return len(changes)
}

// Watch refreshes when the document changes, until ctx is done.
func (s *Store) Watch(ctx context.Context) error {
	log := logging.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create sync watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}

	log.Debug().Str("path", s.path).Msg("watching sync storage")
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if err := s.Refresh(ctx); err != nil {
					log.Warn().Err(err).Msg("sync refresh failed")
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("sync watcher error")
		}
	}
}

func (s *Store) Close() error {
	s.feed.Close()
	return nil
}

func (s *Store) read() (*document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &document{Version: documentVersion, Items: map[string]json.RawMessage{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sync document: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sync document %s: %w", s.path, err)
	}
	if doc.Items == nil {
		doc.Items = map[string]json.RawMessage{}
	}
	return &doc, nil
}

func (s *Store) write(doc *document) error {
	doc.Version = documentVersion
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode sync document: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".selsearch-sync-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write sync document: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace sync document: %w", err)
	}
	return nil
}

// itemsOf returns compacted values so that re-indentation by the encoder
// does not register as a change.
func itemsOf(doc *document) map[string][]byte {
	out := make(map[string][]byte, len(doc.Items))
	for k, v := range doc.Items {
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err != nil {
			out[k] = bytes.Clone(v)
			continue
		}
		out[k] = buf.Bytes()
	}
	return out
}

func sortedKeys(a, b map[string][]byte) []string {
	keys := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, m := range []map[string][]byte{a, b} {
		for k := range m {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}
