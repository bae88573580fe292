package port

import (
	"context"

	"github.com/bnema/selsearch/internal/domain/entity"
)

// StorageChangeHandler receives changes observed on a storage area.
type StorageChangeHandler func(ctx context.Context, change entity.StorageChange)

// Storage is a key-value area with change notifications.
// Values are opaque bytes; a missing key reads as nil without error.
type Storage interface {
	// Area names the storage area.
	Area() entity.StorageArea

	// Get returns the value stored under key, or nil when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value under key. Last write wins.
	Set(ctx context.Context, key string, value []byte) error

	// Clear removes every key.
	Clear(ctx context.Context) error

	// OnChange registers a handler called for every change, including
	// changes written by other processes once Watch is running.
	OnChange(handler StorageChangeHandler)

	// Watch delivers external changes until ctx is cancelled.
	Watch(ctx context.Context) error

	// Close releases the underlying resources.
	Close() error
}
