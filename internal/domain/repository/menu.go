package repository

import (
	"context"

	"github.com/bnema/selsearch/internal/domain/entity"
)

// MenuRepository persists the whole menu tree as one value.
type MenuRepository interface {
	// Load returns the stored tree. found is false when nothing is stored,
	// which callers treat as a first run.
	Load(ctx context.Context) (tree entity.Tree, found bool, err error)

	// Save replaces the stored tree.
	Save(ctx context.Context, tree entity.Tree) error

	// Clear removes every key of the underlying storage area.
	Clear(ctx context.Context) error
}

// VersionRepository remembers the last version of the program that ran,
// which distinguishes an install from an update.
type VersionRepository interface {
	LastVersion(ctx context.Context) (string, error)
	SetLastVersion(ctx context.Context, version string) error
}
