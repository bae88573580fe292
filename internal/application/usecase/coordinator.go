package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/domain/repository"
	"github.com/bnema/selsearch/internal/logging"
)

// CoordinatorState tracks the daemon's in-memory tree.
type CoordinatorState int

const (
	StateUnloaded CoordinatorState = iota
	StateLoading
	StateReady
)

func (s CoordinatorState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unloaded"
	}
}

// Lifecycle is how the daemon was started relative to the previous run.
type Lifecycle string

const (
	LifecycleInstall Lifecycle = "install"
	LifecycleUpdate  Lifecycle = "update"
	LifecycleStartup Lifecycle = "startup"
)

// DetectLifecycle compares the stored version with the running one. An empty
// stored version is an install; any other difference is an update.
func DetectLifecycle(lastVersion, current string) Lifecycle {
	if lastVersion == "" {
		return LifecycleInstall
	}
	last, errLast := semver.NewVersion(lastVersion)
	cur, errCur := semver.NewVersion(current)
	if errLast != nil || errCur != nil {
		if lastVersion == current {
			return LifecycleStartup
		}
		return LifecycleUpdate
	}
	if last.Equal(cur) {
		return LifecycleStartup
	}
	return LifecycleUpdate
}

// ErrNotReady is returned when the initial load did not finish before the
// caller gave up.
var ErrNotReady = errors.New("menu not loaded yet")

// CoordinatorConfig holds the coordinator's non-port dependencies.
type CoordinatorConfig struct {
	Version string
	Labels  menu.Labels
	NewID   menu.IDGenerator
}

// BackgroundCoordinator owns the daemon's copy of the tree. It keeps the
// native menu in step with storage and answers clicks and messages.
type BackgroundCoordinator struct {
	menus      repository.MenuRepository
	versions   repository.VersionRepository
	loader     *LoadMenuUseCase
	projector  *ProjectMenuUseCase
	dispatcher *DispatchSearchUseCase
	settings   port.SettingsOpener
	throttle   *logging.ErrorThrottle
	newID      menu.IDGenerator
	version    string

	mu     sync.RWMutex
	state  CoordinatorState
	tree   entity.Tree
	labels menu.Labels

	// applyMu orders tree replacements with their projection.
	applyMu   sync.Mutex
	ready     chan struct{}
	readyOnce sync.Once
	reloads   singleflight.Group
}

// NewBackgroundCoordinator wires a coordinator.
func NewBackgroundCoordinator(
	menus repository.MenuRepository,
	versions repository.VersionRepository,
	projector *ProjectMenuUseCase,
	dispatcher *DispatchSearchUseCase,
	settings port.SettingsOpener,
	throttle *logging.ErrorThrottle,
	cfg CoordinatorConfig,
) *BackgroundCoordinator {
	if cfg.NewID == nil {
		cfg.NewID = menu.NewID
	}
	if throttle == nil {
		throttle = logging.NewErrorThrottle(logging.DefaultRepeatThreshold)
	}
	return &BackgroundCoordinator{
		menus:      menus,
		versions:   versions,
		loader:     NewLoadMenuUseCase(menus, cfg.NewID),
		projector:  projector,
		dispatcher: dispatcher,
		settings:   settings,
		throttle:   throttle,
		newID:      cfg.NewID,
		version:    cfg.Version,
		labels:     cfg.Labels,
		ready:      make(chan struct{}),
	}
}

// State returns the current state.
func (c *BackgroundCoordinator) State() CoordinatorState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Tree returns a copy of the current tree.
func (c *BackgroundCoordinator) Tree() entity.Tree {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree.Clone()
}

// Ready is closed once the initial load finished, successfully or not.
func (c *BackgroundCoordinator) Ready() <-chan struct{} {
	return c.ready
}

// Start runs the initial load. On install it clears storage, seeds the
// defaults and opens the settings editor once; otherwise it loads the stored
// tree. Either way the menu is projected once. Clicks waiting on the initial
// load are released even when it fails.
func (c *BackgroundCoordinator) Start(ctx context.Context) (Lifecycle, error) {
	log := logging.FromContext(ctx)
	defer c.markReady()

	c.setState(StateLoading)

	lifecycle := LifecycleStartup
	last, err := c.versions.LastVersion(ctx)
	if err != nil {
		c.throttle.Error(log, err, "failed to read last version")
	} else {
		lifecycle = DetectLifecycle(last, c.version)
	}
	log.Info().Str("lifecycle", string(lifecycle)).Str("last_version", last).Str("version", c.version).Msg("starting coordinator")

	if lifecycle == LifecycleInstall {
		err = c.install(ctx)
	} else {
		err = c.reload(ctx)
	}
	if err != nil {
		c.setState(StateReady)
		return lifecycle, err
	}

	if lifecycle != LifecycleStartup {
		if err := c.versions.SetLastVersion(ctx, c.version); err != nil {
			c.throttle.Error(log, err, "failed to save version")
		}
	}
	return lifecycle, nil
}

func (c *BackgroundCoordinator) install(ctx context.Context) error {
	log := logging.FromContext(ctx)

	c.applyMu.Lock()
	tree, err := c.loader.Seed(ctx)
	if err != nil {
		c.applyMu.Unlock()
		c.throttle.Error(log, err, "failed to seed default menu")
		return err
	}
	c.setTree(tree)
	c.project(ctx, tree)
	c.applyMu.Unlock()

	if err := c.settings.OpenSettings(ctx); err != nil {
		c.throttle.Error(log, err, "failed to open settings after install")
	}
	return nil
}

// Reload re-reads the stored tree, repairs it and re-projects. Concurrent
// calls share one reload.
func (c *BackgroundCoordinator) Reload(ctx context.Context) error {
	return c.reload(ctx)
}

func (c *BackgroundCoordinator) reload(ctx context.Context) error {
	_, err, shared := c.reloads.Do("reload", func() (any, error) {
		// shared by every caller, so one caller's cancellation must not cut it short
		detached := context.WithoutCancel(ctx)

		c.applyMu.Lock()
		defer c.applyMu.Unlock()

		result, err := c.loader.Execute(detached)
		if err != nil {
			return nil, err
		}
		c.setTree(result.Tree)
		c.project(detached, result.Tree)
		return nil, nil
	})
	if err != nil {
		c.throttle.Error(logging.FromContext(ctx), err, "failed to reload menu")
	}
	if shared {
		logging.FromContext(ctx).Debug().Msg("reload shared with concurrent caller")
	}
	return err
}

// HandleMessage answers a message from the settings editor.
func (c *BackgroundCoordinator) HandleMessage(ctx context.Context, msg entity.Message) entity.MessageResponse {
	if msg.Action != entity.ActionUpdateContextMenus {
		logging.FromContext(ctx).Warn().Str("action", string(msg.Action)).Msg("unknown message action")
		return entity.MessageResponse{Status: entity.StatusUnknownAction}
	}
	if err := c.reload(ctx); err != nil {
		return entity.MessageResponse{Status: entity.StatusMenusUpdateFailed, Error: err.Error()}
	}
	return entity.MessageResponse{Status: entity.StatusMenusUpdated}
}

// HandleStorageChange adopts a new menuItems value from either storage area.
// A value identical to the current tree is ignored. Removals are never
// written back: a local removal adopts an empty tree in memory, and a sync
// removal keeps the current tree and re-projects it.
func (c *BackgroundCoordinator) HandleStorageChange(ctx context.Context, change entity.StorageChange) {
	if change.Key != entity.KeyMenuItems {
		return
	}
	log := logging.FromContext(ctx).With().Str("area", string(change.Area)).Logger()

	if change.Removed() {
		c.handleRemoval(ctx, &log, change.Area)
		return
	}

	tree := entity.Tree{}
	if err := json.Unmarshal(change.NewValue, &tree); err != nil {
		c.throttle.Error(&log, err, "failed to decode changed menu items")
		return
	}

	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	if c.sameAsCurrent(tree) {
		log.Debug().Msg("menu change already applied")
		return
	}

	repaired, changed := menu.Repair(tree, c.newID)
	if changed || change.Area != entity.StorageLocal {
		if err := c.menus.Save(ctx, repaired); err != nil {
			c.throttle.Error(&log, err, "failed to save adopted menu")
		}
	}
	c.setTree(repaired)
	log.Info().Int("nodes", repaired.Count()).Bool("repaired", changed).Msg("menu change adopted")
	c.project(ctx, repaired)
}

func (c *BackgroundCoordinator) handleRemoval(ctx context.Context, log *zerolog.Logger, area entity.StorageArea) {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	if area != entity.StorageLocal {
		log.Info().Msg("menu removed from sync storage, keeping local menu")
		c.project(ctx, c.Tree())
		return
	}
	c.setTree(entity.Tree{})
	log.Info().Msg("menu removed from local storage")
	c.project(ctx, entity.Tree{})
}

// Subscribe registers the coordinator on every storage area.
func (c *BackgroundCoordinator) Subscribe(stores ...port.Storage) {
	for _, s := range stores {
		s.OnChange(c.HandleStorageChange)
	}
}

// HandleClick waits for the initial load, bounded by ctx, then dispatches.
func (c *BackgroundCoordinator) HandleClick(ctx context.Context, click entity.MenuClick) (DispatchResult, error) {
	select {
	case <-c.ready:
	case <-ctx.Done():
		return DispatchResult{}, fmt.Errorf("%w: %w", ErrNotReady, ctx.Err())
	}
	return c.dispatcher.HandleClick(ctx, c.Tree(), click)
}

// OpenSettings opens the settings editor.
func (c *BackgroundCoordinator) OpenSettings(ctx context.Context) error {
	if err := c.settings.OpenSettings(ctx); err != nil {
		return fmt.Errorf("failed to open settings: %w", err)
	}
	return nil
}

// SetLabels changes the fixed entry titles and re-projects.
func (c *BackgroundCoordinator) SetLabels(ctx context.Context, labels menu.Labels) {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	c.mu.Lock()
	c.labels = labels
	tree := c.tree.Clone()
	ready := c.state == StateReady
	c.mu.Unlock()

	if ready {
		c.project(ctx, tree)
	}
}

// Project re-projects the current tree.
func (c *BackgroundCoordinator) Project(ctx context.Context) ProjectionReport {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()
	return c.project(ctx, c.Tree())
}

func (c *BackgroundCoordinator) project(ctx context.Context, tree entity.Tree) ProjectionReport {
	c.mu.RLock()
	labels := c.labels
	c.mu.RUnlock()
	return c.projector.Execute(ctx, tree, labels)
}

func (c *BackgroundCoordinator) sameAsCurrent(tree entity.Tree) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state != StateReady {
		return false
	}
	current, err := menu.Marshal(c.tree)
	if err != nil {
		return false
	}
	next, err := menu.Marshal(tree)
	if err != nil {
		return false
	}
	return bytes.Equal(current, next)
}

func (c *BackgroundCoordinator) setTree(tree entity.Tree) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree = tree
	c.state = StateReady
}

func (c *BackgroundCoordinator) setState(s CoordinatorState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

func (c *BackgroundCoordinator) markReady() {
	c.readyOnce.Do(func() { close(c.ready) })
}
