package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/selsearch/internal/application/usecase"
	"github.com/bnema/selsearch/internal/infrastructure/browser"
	"github.com/bnema/selsearch/internal/infrastructure/config"
	"github.com/bnema/selsearch/internal/infrastructure/desktop"
	"github.com/bnema/selsearch/internal/infrastructure/ipc"
	"github.com/bnema/selsearch/internal/infrastructure/lock"
	"github.com/bnema/selsearch/internal/infrastructure/surface"
	"github.com/bnema/selsearch/internal/logging"
)

// ErrDaemonRunning is returned when another daemon holds the lock.
var ErrDaemonRunning = errors.New("daemon already running")

// RunDaemon owns the menu surface until ctx is done: it loads and projects
// the tree, follows both storage areas and the config file, and serves the
// IPC socket.
func (a *App) RunDaemon(ctx context.Context) error {
	ctx = logging.With(ctx, map[string]any{
		"pid":    os.Getpid(),
		"socket": a.Config.Daemon.SocketPath,
	})
	log := logging.FromContext(ctx)
	trace := logging.NewStartupTrace(log)
	defer trace.Finish()

	lockPath, err := config.GetLockFile()
	if err != nil {
		return fmt.Errorf("failed to resolve lock file: %w", err)
	}
	lk, err := lock.TryAcquire(lockPath)
	if err != nil {
		if errors.Is(err, lock.ErrHeld) {
			return fmt.Errorf("%w: %w", ErrDaemonRunning, err)
		}
		return err
	}
	defer func() {
		if err := lk.Release(); err != nil {
			log.Warn().Err(err).Msg("failed to release daemon lock")
		}
	}()
	if err := lk.WritePID(); err != nil {
		log.Warn().Err(err).Msg("failed to write daemon pid")
	}
	trace.Mark("lock")

	surf := surface.NewMemory()
	settings := desktop.NewSettingsLauncher(a.Config.Settings.LauncherCommand)
	tabs := browser.NewTabOpener(a.Config.Dispatch.BrowserCommand)

	coordinator := usecase.NewBackgroundCoordinator(
		a.Menus,
		a.Versions,
		usecase.NewProjectMenuUseCase(surf, a.Throttle),
		usecase.NewDispatchSearchUseCase(tabs, settings, a.Throttle),
		settings,
		a.Throttle,
		usecase.CoordinatorConfig{
			Version: a.BuildInfo.Version,
			Labels:  a.Config.Labels(),
		},
	)
	coordinator.Subscribe(a.Local, a.Sync)

	server := ipc.NewServer(ipc.ServerConfig{
		SocketPath:   a.Config.Daemon.SocketPath,
		ClickTimeout: a.Config.ClickTimeout(),
	}, coordinator, surf)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Serve(gctx) })
	g.Go(func() error { return a.Local.Watch(gctx) })
	g.Go(func() error { return a.Sync.Watch(gctx) })
	trace.Mark("serve")

	lifecycle, err := coordinator.Start(gctx)
	if err != nil {
		log.Error().Err(err).Str("lifecycle", string(lifecycle)).Msg("initial menu load failed")
	}
	trace.Mark("menu")

	a.ConfigMgr.OnConfigChange(func(cfg *config.Config) {
		coordinator.SetLabels(gctx, cfg.Labels())
	})
	g.Go(func() error {
		if err := a.ConfigMgr.Watch(gctx); err != nil {
			log.Warn().Err(err).Msg("config hot reload disabled")
		}
		return nil
	})

	log.Info().
		Str("socket", a.Config.Daemon.SocketPath).
		Str("lifecycle", string(lifecycle)).
		Msg("daemon ready")
	trace.Finish()

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("daemon stopped")
	return nil
}
