// Package persistence maps the menu tree and program metadata onto a
// key-value storage area.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/domain/repository"
	"github.com/bnema/selsearch/internal/logging"
)

type menuRepo struct {
	storage port.Storage
}

// NewMenuRepository stores the tree as JSON under the menuItems key.
func NewMenuRepository(storage port.Storage) repository.MenuRepository {
	return &menuRepo{storage: storage}
}

func (r *menuRepo) Load(ctx context.Context) (entity.Tree, bool, error) {
	log := logging.FromContext(ctx)

	data, err := r.storage.Get(ctx, entity.KeyMenuItems)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read menu items: %w", err)
	}
	if data == nil {
		log.Debug().Str("area", string(r.storage.Area())).Msg("no menu items stored")
		return nil, false, nil
	}

	tree, err := DecodeTree(data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode menu items: %w", err)
	}
	log.Debug().Str("area", string(r.storage.Area())).Int("nodes", tree.Count()).Msg("menu items loaded")
	return tree, true, nil
}

func (r *menuRepo) Save(ctx context.Context, tree entity.Tree) error {
	data, err := menu.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to encode menu items: %w", err)
	}
	if err := r.storage.Set(ctx, entity.KeyMenuItems, data); err != nil {
		return fmt.Errorf("failed to save menu items: %w", err)
	}
	return nil
}

func (r *menuRepo) Clear(ctx context.Context) error {
	if err := r.storage.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

// DecodeTree decodes a stored menuItems value. Absent keys are filled with
// defaults and ids are left as stored; callers run menu.Repair.
func DecodeTree(data []byte) (entity.Tree, error) {
	var tree entity.Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

type versionRepo struct {
	storage port.Storage
}

// NewVersionRepository stores the last run version under the lastVersion key.
func NewVersionRepository(storage port.Storage) repository.VersionRepository {
	return &versionRepo{storage: storage}
}

func (r *versionRepo) LastVersion(ctx context.Context) (string, error) {
	data, err := r.storage.Get(ctx, entity.KeyLastVersion)
	if err != nil {
		return "", fmt.Errorf("failed to read last version: %w", err)
	}
	return string(data), nil
}

func (r *versionRepo) SetLastVersion(ctx context.Context, version string) error {
	if err := r.storage.Set(ctx, entity.KeyLastVersion, []byte(version)); err != nil {
		return fmt.Errorf("failed to save last version: %w", err)
	}
	return nil
}
