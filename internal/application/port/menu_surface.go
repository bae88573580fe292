package port

import (
	"context"

	"github.com/bnema/selsearch/internal/domain/entity"
)

// MenuSurface is the native hierarchical menu.
type MenuSurface interface {
	// RemoveAll deletes every entry.
	RemoveAll(ctx context.Context) error

	// Create adds one entry. Duplicate ids and unknown parents are errors.
	Create(ctx context.Context, entry entity.MenuEntry) error

	// Entries returns the current entries in creation order.
	Entries(ctx context.Context) ([]entity.MenuEntry, error)
}
