package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/infrastructure/persistence/feed"
	"github.com/bnema/selsearch/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/selsearch/internal/logging"
)

// KVStore is the local storage area backed by a SQLite table.
//
// Writes made by other processes are discovered by Refresh, which Watch runs
// whenever the database or its WAL file changes on disk.
type KVStore struct {
	db      *sql.DB
	queries *sqlc.Queries
	path    string
	feed    *feed.Feed
	now     func() time.Time

	// PollInterval adds a periodic Refresh to Watch. Zero disables it.
	PollInterval time.Duration

	mu       sync.Mutex
	lastSeen int64
	known    map[string][]byte
	own      map[int64]struct{}
}

var _ port.Storage = (*KVStore)(nil)

// OpenKVStore opens (creating and migrating if needed) the database at path.
func OpenKVStore(ctx context.Context, path string) (*KVStore, error) {
	db, err := NewConnection(ctx, path)
	if err != nil {
		return nil, err
	}
	store, err := NewKVStore(ctx, db, path)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewKVStore wraps an open, migrated database. path is watched by Watch.
func NewKVStore(ctx context.Context, db *sql.DB, path string) (*KVStore, error) {
	s := &KVStore{
		db:      db,
		queries: sqlc.New(db),
		path:    path,
		feed:    feed.New(logging.WithComponent(context.WithoutCancel(ctx), "storage.local")),
		now:     time.Now,
		known:   make(map[string][]byte),
		own:     make(map[int64]struct{}),
	}

	rev, err := s.queries.CurrentRevision(ctx)
	if err != nil {
		s.feed.Close()
		return nil, fmt.Errorf("failed to read storage revision: %w", err)
	}
	items, err := s.queries.ListItems(ctx)
	if err != nil {
		s.feed.Close()
		return nil, fmt.Errorf("failed to read storage items: %w", err)
	}
	s.lastSeen = rev
	for _, item := range items {
		s.known[item.Key] = valueOf(item)
	}
	return s, nil
}

func (s *KVStore) Area() entity.StorageArea { return entity.StorageLocal }

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	item, err := s.queries.GetItem(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return valueOf(item), nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	log := logging.FromContext(ctx)
	value = bytes.Clone(value)
	if value == nil {
		value = []byte{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		rev      int64
		old      []byte
		oldFound bool
	)
	err := s.inTx(ctx, func(q *sqlc.Queries) error {
		// Taking the revision first makes the write lock the first thing the
		// transaction acquires.
		var err error
		if rev, err = q.NextRevision(ctx); err != nil {
			return err
		}
		item, err := q.GetItem(ctx, key)
		switch {
		case err == nil:
			old, oldFound = valueOf(item), true
		case !errors.Is(err, sql.ErrNoRows):
			return err
		}
		return q.UpsertItem(ctx, sqlc.UpsertItemParams{
			Key:       key,
			Value:     value,
			Revision:  rev,
			UpdatedAt: s.now().UnixMilli(),
		})
	})
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}

	s.own[rev] = struct{}{}
	s.known[key] = value
	log.Debug().Str("key", key).Int64("revision", rev).Int("bytes", len(value)).Msg("storage value written")

	if oldFound && bytes.Equal(old, value) {
		return nil
	}
	change := entity.StorageChange{Key: key, NewValue: value, Area: entity.StorageLocal}
	if oldFound {
		change.OldValue = old
	}
	s.feed.Publish(change)
	return nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		rev     int64
		removed []sqlc.StorageItem
	)
	err := s.inTx(ctx, func(q *sqlc.Queries) error {
		var err error
		if rev, err = q.NextRevision(ctx); err != nil {
			return err
		}
		if removed, err = q.ListItems(ctx); err != nil {
			return err
		}
		return q.DeleteAllItems(ctx, sqlc.DeleteAllItemsParams{Revision: rev, UpdatedAt: s.now().UnixMilli()})
	})
	if err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}

	s.own[rev] = struct{}{}
	clear(s.known)
	changes := make([]entity.StorageChange, 0, len(removed))
	for _, item := range removed {
		changes = append(changes, entity.StorageChange{Key: item.Key, OldValue: valueOf(item), Area: entity.StorageLocal})
	}
	s.feed.Publish(changes...)
	logging.FromContext(ctx).Debug().Int("keys", len(removed)).Msg("storage cleared")
	return nil
}

func (s *KVStore) OnChange(handler port.StorageChangeHandler) {
	s.feed.Subscribe(handler)
}

// Refresh reads rows written since the last seen revision and publishes the
// ones this store did not write itself.
func (s *KVStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.queries.ListItemsSince(ctx, s.lastSeen)
	if err != nil {
		return fmt.Errorf("failed to read storage changes: %w", err)
	}

	var changes []entity.StorageChange
	for _, item := range items {
		if item.Revision > s.lastSeen {
			s.lastSeen = item.Revision
		}
		if _, mine := s.own[item.Revision]; mine {
			continue
		}

		old, had := s.known[item.Key]
		if item.Deleted != 0 {
			if !had {
				continue
			}
			delete(s.known, item.Key)
			changes = append(changes, entity.StorageChange{Key: item.Key, OldValue: old, Area: entity.StorageLocal})
			continue
		}

		value := valueOf(item)
		if had && bytes.Equal(old, value) {
			continue
		}
		s.known[item.Key] = value
		change := entity.StorageChange{Key: item.Key, NewValue: value, Area: entity.StorageLocal}
		if had {
			change.OldValue = old
		}
		changes = append(changes, change)
	}

	for rev := range s.own {
		if rev <= s.lastSeen {
			delete(s.own, rev)
		}
	}

	if len(changes) > 0 {
		logging.FromContext(ctx).Debug().Int("changes", len(changes)).Int64("revision", s.lastSeen).Msg("external storage changes")
	}
	s.feed.Publish(changes...)
	return nil
}

// Watch refreshes whenever the database files change, until ctx is done.
func (s *KVStore) Watch(ctx context.Context) error {
	log := logging.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create storage watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(s.path), err)
	}

	var tick <-chan time.Time
	if s.PollInterval > 0 {
		ticker := time.NewTicker(s.PollInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	watched := map[string]struct{}{
		filepath.Clean(s.path):          {},
		filepath.Clean(s.path + "-wal"): {},
	}

	refresh := func() {
		if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Msg("storage refresh failed")
		}
	}

	log.Debug().Str("path", s.path).Msg("watching local storage")
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if _, match := watched[filepath.Clean(event.Name)]; !match {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				refresh()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("storage watcher error")
		case <-tick:
			refresh()
		}
	}
}

// Close stops change delivery and closes the database.
func (s *KVStore) Close() error {
	s.feed.Close()
	return Close(s.db)
}

func (s *KVStore) inTx(ctx context.Context, fn func(q *sqlc.Queries) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(s.queries.WithTx(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func valueOf(item sqlc.StorageItem) []byte {
	if item.Value == nil {
		return []byte{}
	}
	return item.Value
}
