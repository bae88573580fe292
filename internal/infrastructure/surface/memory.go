// Package surface holds the daemon's authoritative context menu. Renderers
// (the launcher picker, websocket clients) mirror it through snapshots.
package surface

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/selsearch/internal/domain/entity"
)

var (
	// ErrDuplicateID is returned when an entry id is already present.
	ErrDuplicateID = errors.New("duplicate menu entry id")
	// ErrUnknownParent is returned when an entry references a missing parent.
	ErrUnknownParent = errors.New("unknown parent menu entry")
	// ErrEmptyID is returned when an entry has no id.
	ErrEmptyID = errors.New("menu entry id is empty")
)

// Snapshot is the full content of the surface after a change.
type Snapshot struct {
	Revision uint64             `json:"revision"`
	Entries  []entity.MenuEntry `json:"entries"`
}

// Memory implements port.MenuSurface in memory.
type Memory struct {
	mu          sync.RWMutex
	entries     []entity.MenuEntry
	index       map[string]int
	revision    uint64
	subscribers map[int]chan Snapshot
	nextSub     int
}

// NewMemory creates an empty surface.
func NewMemory() *Memory {
	return &Memory{
		index:       make(map[string]int),
		subscribers: make(map[int]chan Snapshot),
	}
}

// RemoveAll deletes every entry.
func (m *Memory) RemoveAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = nil
	clear(m.index)
	m.publishLocked()
	return nil
}

// Create appends one entry. Parents must be created before their children.
func (m *Memory) Create(ctx context.Context, entry entity.MenuEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entry.ID == "" {
		return ErrEmptyID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.index[entry.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, entry.ID)
	}
	if entry.ParentID != "" {
		if _, ok := m.index[entry.ParentID]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownParent, entry.ParentID)
		}
	}

	entry.Contexts = slices.Clone(entry.Contexts)
	m.index[entry.ID] = len(m.entries)
	m.entries = append(m.entries, entry)
	m.publishLocked()
	return nil
}

// Entries returns a copy of the entries in creation order.
func (m *Memory) Entries(_ context.Context) ([]entity.MenuEntry, error) {
	return m.Snapshot().Entries, nil
}

// Snapshot returns the current content with its revision.
func (m *Memory) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Subscribe returns a channel receiving the latest snapshot after every
// change, starting with the current one. Slow readers only see the most
// recent snapshot. The returned function unsubscribes and closes the channel.
func (m *Memory) Subscribe() (<-chan Snapshot, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan Snapshot, 1)
	id := m.nextSub
	m.nextSub++
	m.subscribers[id] = ch
	ch <- m.snapshotLocked()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subscribers, id)
			close(ch)
		})
	}
}

func (m *Memory) snapshotLocked() Snapshot {
	entries := make([]entity.MenuEntry, len(m.entries))
	for i, e := range m.entries {
		e.Contexts = slices.Clone(e.Contexts)
		entries[i] = e
	}
	return Snapshot{Revision: m.revision, Entries: entries}
}

func (m *Memory) publishLocked() {
	m.revision++
	if len(m.subscribers) == 0 {
		return
	}
	snap := m.snapshotLocked()
	for _, ch := range m.subscribers {
		// Drop a stale pending snapshot so the newest one always fits.
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}
