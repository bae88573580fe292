package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/domain/repository"
	"github.com/bnema/selsearch/internal/logging"
)

// LoadResult is the outcome of loading the menu tree.
type LoadResult struct {
	Tree entity.Tree
	// Seeded is true when nothing (or an empty tree) was stored and the
	// defaults were written instead.
	Seeded bool
	// Repaired is true when ids had to be assigned.
	Repaired bool
}

// LoadMenuUseCase loads the stored tree, seeding the defaults on first run,
// and repairs its ids. Anything it changes is written back.
type LoadMenuUseCase struct {
	menus repository.MenuRepository
	newID menu.IDGenerator
}

// NewLoadMenuUseCase creates a loader. newID may be nil to use menu.NewID.
func NewLoadMenuUseCase(menus repository.MenuRepository, newID menu.IDGenerator) *LoadMenuUseCase {
	if newID == nil {
		newID = menu.NewID
	}
	return &LoadMenuUseCase{menus: menus, newID: newID}
}

// Execute loads, seeds and repairs the tree.
func (uc *LoadMenuUseCase) Execute(ctx context.Context) (LoadResult, error) {
	log := logging.FromContext(ctx)

	tree, found, err := uc.menus.Load(ctx)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to load menu: %w", err)
	}

	var result LoadResult
	if !found || len(tree) == 0 {
		log.Info().Msg("no menu stored, seeding defaults")
		tree = menu.DefaultTree(uc.newID)
		result.Seeded = true
	}

	result.Tree, result.Repaired = menu.Repair(tree, uc.newID)
	if result.Seeded || result.Repaired {
		if err := uc.menus.Save(ctx, result.Tree); err != nil {
			return LoadResult{}, fmt.Errorf("failed to save menu: %w", err)
		}
		log.Debug().Bool("seeded", result.Seeded).Bool("repaired", result.Repaired).Msg("menu written back")
	}
	return result, nil
}

// Seed clears the repository and writes a fresh default tree.
func (uc *LoadMenuUseCase) Seed(ctx context.Context) (entity.Tree, error) {
	if err := uc.menus.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear storage: %w", err)
	}
	tree, _ := menu.Repair(menu.DefaultTree(uc.newID), uc.newID)
	if err := uc.menus.Save(ctx, tree); err != nil {
		return nil, fmt.Errorf("failed to save default menu: %w", err)
	}
	return tree, nil
}
