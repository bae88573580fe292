package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/domain/repository"
	"github.com/bnema/selsearch/internal/logging"
)

var (
	// ErrSyncEmpty is returned by PullSync when the sync area holds no menu.
	ErrSyncEmpty = errors.New("no menu found in sync storage")
	// ErrSyncUnavailable is returned when no sync area is configured.
	ErrSyncUnavailable = errors.New("sync storage is not configured")
)

// ManageMenuUseCase is the settings editor's view of the tree. Structural
// edits are written immediately, text edits after a quiet period. Every write
// is followed by a best-effort notification to the daemon.
type ManageMenuUseCase struct {
	menus     repository.MenuRepository
	syncMenus repository.MenuRepository
	notifier  port.BackgroundNotifier
	loader    *LoadMenuUseCase
	newID     menu.IDGenerator
	debouncer *Debouncer

	mu           sync.Mutex
	tree         entity.Tree
	loaded       bool
	debouncedErr error
	// rev counts tree replacements; a debounced write for an older rev is dropped.
	rev uint64

	// writeMu keeps storage writes in edit order.
	writeMu sync.Mutex
}

// ManageMenuConfig holds optional collaborators.
type ManageMenuConfig struct {
	// SyncMenus is the sync area; nil disables push and pull.
	SyncMenus repository.MenuRepository
	// Notifier reaches the daemon; nil skips notifications.
	Notifier port.BackgroundNotifier
	NewID    menu.IDGenerator
	Debounce *Debouncer
}

// NewManageMenuUseCase creates the editor use case.
func NewManageMenuUseCase(menus repository.MenuRepository, cfg ManageMenuConfig) *ManageMenuUseCase {
	if cfg.NewID == nil {
		cfg.NewID = menu.NewID
	}
	if cfg.Debounce == nil {
		cfg.Debounce = NewDebouncer(DefaultDebounceDelay)
	}
	return &ManageMenuUseCase{
		menus:     menus,
		syncMenus: cfg.SyncMenus,
		notifier:  cfg.Notifier,
		loader:    NewLoadMenuUseCase(menus, cfg.NewID),
		newID:     cfg.NewID,
		debouncer: cfg.Debounce,
	}
}

// Load reads the stored tree, seeding defaults when empty. The daemon is
// notified when something had to be written.
func (uc *ManageMenuUseCase) Load(ctx context.Context) (entity.Tree, error) {
	result, err := uc.loader.Execute(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.tree = result.Tree
	uc.loaded = true
	uc.rev++
	uc.mu.Unlock()

	if result.Seeded || result.Repaired {
		uc.notify(ctx)
	}
	return result.Tree.Clone(), nil
}

// Tree returns a copy of the edited tree.
func (uc *ManageMenuUseCase) Tree() entity.Tree {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.tree.Clone()
}

func (uc *ManageMenuUseCase) current(ctx context.Context) (entity.Tree, error) {
	uc.mu.Lock()
	loaded := uc.loaded
	tree := uc.tree
	uc.mu.Unlock()
	if loaded {
		return tree, nil
	}
	if _, err := uc.Load(ctx); err != nil {
		return nil, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.tree, nil
}

// AddSearch appends a new search to the top level, or to groupID.
func (uc *ManageMenuUseCase) AddSearch(ctx context.Context, groupID string) (*entity.Search, error) {
	var added *entity.Search
	err := uc.structural(ctx, func(tree entity.Tree) (entity.Tree, error) {
		next, search, err := menu.AddSearch(tree, groupID, uc.newID())
		added = search
		return next, err
	})
	return added, err
}

// AddGroup appends an empty group.
func (uc *ManageMenuUseCase) AddGroup(ctx context.Context) (*entity.Group, error) {
	var added *entity.Group
	err := uc.structural(ctx, func(tree entity.Tree) (entity.Tree, error) {
		next, group := menu.AddGroup(tree, uc.newID())
		added = group
		return next, nil
	})
	return added, err
}

// AddSeparator appends a separator to the top level, or to groupID.
func (uc *ManageMenuUseCase) AddSeparator(ctx context.Context, groupID string) (*entity.Separator, error) {
	var added *entity.Separator
	err := uc.structural(ctx, func(tree entity.Tree) (entity.Tree, error) {
		next, sep, err := menu.AddSeparator(tree, groupID, uc.newID())
		added = sep
		return next, err
	})
	return added, err
}

// Delete removes a node and, for a group, its items.
func (uc *ManageMenuUseCase) Delete(ctx context.Context, id string) (entity.Node, error) {
	var removed entity.Node
	err := uc.structural(ctx, func(tree entity.Tree) (entity.Tree, error) {
		next, node, err := menu.Delete(tree, id)
		removed = node
		return next, err
	})
	return removed, err
}

// Move reorders or reparents a node.
func (uc *ManageMenuUseCase) Move(ctx context.Context, id string, to menu.Location) error {
	return uc.structural(ctx, func(tree entity.Tree) (entity.Tree, error) {
		return menu.Move(tree, id, to)
	})
}

// Rename sets the name of a node.
func (uc *ManageMenuUseCase) Rename(ctx context.Context, id, name string) error {
	return uc.textual(ctx, func(tree entity.Tree) (entity.Tree, error) {
		return menu.Rename(tree, id, name)
	})
}

// SetURL sets the URL template of a search.
func (uc *ManageMenuUseCase) SetURL(ctx context.Context, id, template string) error {
	return uc.textual(ctx, func(tree entity.Tree) (entity.Tree, error) {
		return menu.SetURL(tree, id, template)
	})
}

// SetEncoding sets the query encoding of a search.
func (uc *ManageMenuUseCase) SetEncoding(ctx context.Context, id string, enc entity.QueryEncoding) error {
	return uc.textual(ctx, func(tree entity.Tree) (entity.Tree, error) {
		return menu.SetEncoding(tree, id, enc)
	})
}

// Export writes the tree to w.
func (uc *ManageMenuUseCase) Export(ctx context.Context, w io.Writer, format menu.Format) error {
	tree, err := uc.current(ctx)
	if err != nil {
		return err
	}
	if err := menu.Encode(w, tree, format); err != nil {
		return fmt.Errorf("failed to export menu: %w", err)
	}
	logging.FromContext(ctx).Info().Str("format", string(format)).Int("nodes", tree.Count()).Msg("menu exported")
	return nil
}

// Import replaces the tree with the content of r. Invalid input leaves the
// tree untouched and returns an error matching menu.ErrInvalidImport.
func (uc *ManageMenuUseCase) Import(ctx context.Context, r io.Reader, format menu.Format) (entity.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import: %w", err)
	}
	imported, err := menu.Decode(data, format, uc.newID)
	if err != nil {
		return nil, err
	}
	if err := uc.replace(ctx, imported); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().Int("nodes", imported.Count()).Msg("menu imported")
	return imported.Clone(), nil
}

// RestoreDefaults replaces the tree with a fresh default tree.
func (uc *ManageMenuUseCase) RestoreDefaults(ctx context.Context) (entity.Tree, error) {
	tree, _ := menu.Repair(menu.DefaultTree(uc.newID), uc.newID)
	if err := uc.replace(ctx, tree); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().Msg("default menu restored")
	return tree.Clone(), nil
}

// PushSync copies the tree to the sync area.
func (uc *ManageMenuUseCase) PushSync(ctx context.Context) error {
	if uc.syncMenus == nil {
		return ErrSyncUnavailable
	}
	if err := uc.Flush(ctx); err != nil {
		return err
	}
	tree, err := uc.current(ctx)
	if err != nil {
		return err
	}
	if err := uc.syncMenus.Save(ctx, tree); err != nil {
		return fmt.Errorf("failed to push menu to sync storage: %w", err)
	}
	logging.FromContext(ctx).Info().Int("nodes", tree.Count()).Msg("menu pushed to sync storage")
	return nil
}

// PullSync replaces the tree with the one in the sync area.
func (uc *ManageMenuUseCase) PullSync(ctx context.Context) (entity.Tree, error) {
	if uc.syncMenus == nil {
		return nil, ErrSyncUnavailable
	}
	tree, found, err := uc.syncMenus.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pull menu from sync storage: %w", err)
	}
	if !found {
		return nil, ErrSyncEmpty
	}
	tree, _ = menu.Repair(tree, uc.newID)
	if err := uc.replace(ctx, tree); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().Int("nodes", tree.Count()).Msg("menu pulled from sync storage")
	return tree.Clone(), nil
}

// Flush writes any pending text edit now.
func (uc *ManageMenuUseCase) Flush(_ context.Context) error {
	if !uc.debouncer.Flush() {
		return nil
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	err := uc.debouncedErr
	uc.debouncedErr = nil
	return err
}

func (uc *ManageMenuUseCase) structural(ctx context.Context, edit func(entity.Tree) (entity.Tree, error)) error {
	tree, err := uc.current(ctx)
	if err != nil {
		return err
	}
	next, err := edit(tree)
	if err != nil {
		return err
	}
	return uc.replace(ctx, next)
}

func (uc *ManageMenuUseCase) textual(ctx context.Context, edit func(entity.Tree) (entity.Tree, error)) error {
	tree, err := uc.current(ctx)
	if err != nil {
		return err
	}
	next, err := edit(tree)
	if err != nil {
		return err
	}
	next, _ = menu.Repair(next, uc.newID)

	uc.mu.Lock()
	uc.tree = next
	uc.rev++
	rev := uc.rev
	uc.mu.Unlock()

	bg := context.WithoutCancel(ctx)
	uc.debouncer.Schedule(func() {
		err := uc.persistRev(bg, next, rev)
		if err != nil {
			logging.FromContext(bg).Error().Err(err).Msg("debounced save failed")
		}
		uc.mu.Lock()
		uc.debouncedErr = err
		uc.mu.Unlock()
	})
	return nil
}

// replace repairs and writes tree immediately, dropping any pending text edit
// since tree already contains it.
func (uc *ManageMenuUseCase) replace(ctx context.Context, tree entity.Tree) error {
	tree, _ = menu.Repair(tree, uc.newID)
	uc.debouncer.Cancel()

	uc.mu.Lock()
	uc.tree = tree
	uc.loaded = true
	uc.rev++
	rev := uc.rev
	uc.mu.Unlock()

	return uc.persistRev(ctx, tree, rev)
}

// persistRev writes tree unless a newer tree replaced it in the meantime.
// A debounced write that already started holds writeMu, so a later write
// waits for it and lands last.
func (uc *ManageMenuUseCase) persistRev(ctx context.Context, tree entity.Tree, rev uint64) error {
	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	uc.mu.Lock()
	stale := rev != uc.rev
	uc.mu.Unlock()
	if stale {
		logging.FromContext(ctx).Debug().Uint64("rev", rev).Msg("superseded menu write dropped")
		return nil
	}

	if err := uc.menus.Save(ctx, tree); err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}
	uc.notify(ctx)
	return nil
}

func (uc *ManageMenuUseCase) notify(ctx context.Context) {
	if uc.notifier == nil {
		return
	}
	log := logging.FromContext(ctx)
	resp, err := uc.notifier.Notify(ctx, entity.Message{Action: entity.ActionUpdateContextMenus})
	if err != nil {
		log.Debug().Err(err).Msg("daemon not notified")
		return
	}
	if resp.Failed() {
		log.Warn().Str("status", resp.Status).Str("error", resp.Error).Msg("daemon failed to update menus")
		return
	}
	log.Debug().Str("status", resp.Status).Msg("daemon notified")
}
