// Package cli wires the selsearch commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bnema/selsearch/internal/application/usecase"
	"github.com/bnema/selsearch/internal/cli/styles"
	"github.com/bnema/selsearch/internal/domain/build"
	"github.com/bnema/selsearch/internal/domain/repository"
	"github.com/bnema/selsearch/internal/infrastructure/config"
	"github.com/bnema/selsearch/internal/infrastructure/ipc"
	"github.com/bnema/selsearch/internal/infrastructure/persistence"
	"github.com/bnema/selsearch/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/selsearch/internal/infrastructure/persistence/syncfile"
	"github.com/bnema/selsearch/internal/logging"
)

const logFileName = "selsearch.log"

// Options select how the app is set up.
type Options struct {
	// Daemon enables file logging when configured and logs to stderr.
	Daemon bool
	// Quiet keeps the console logger at warn level for interactive commands.
	Quiet bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Storage areas
	Local *sqlite.KVStore
	Sync  *syncfile.Store

	// Repositories
	Menus     repository.MenuRepository
	SyncMenus repository.MenuRepository
	Versions  repository.VersionRepository

	// Daemon client
	Client *ipc.Client

	// Use cases
	ManageUC *usecase.ManageMenuUseCase

	Throttle *logging.ErrorThrottle

	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger, logCleanup, logErr := newLogger(cfg, opts)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.DatabasePath), 0o755); err != nil {
		logCleanup()
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	local, err := sqlite.OpenKVStore(ctx, cfg.Storage.DatabasePath)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("open local storage: %w", err)
	}
	local.PollInterval = cfg.PollInterval()

	sync, err := syncfile.Open(ctx, cfg.Storage.SyncDir)
	if err != nil {
		_ = local.Close()
		logCleanup()
		return nil, fmt.Errorf("open sync storage: %w", err)
	}

	logger.Debug().
		Str("db_path", cfg.Storage.DatabasePath).
		Str("sync_path", sync.Path()).
		Msg("storage opened")

	a := &App{
		Config:     cfg,
		ConfigMgr:  mgr,
		Theme:      styles.NewTheme(),
		Local:      local,
		Sync:       sync,
		Menus:      persistence.NewMenuRepository(local),
		SyncMenus:  persistence.NewMenuRepository(sync),
		Versions:   persistence.NewVersionRepository(local),
		Client:     ipc.NewClient(cfg.Daemon.SocketPath),
		Throttle:   logging.NewErrorThrottle(cfg.Errors.RepeatThreshold),
		ctx:        ctx,
		logCleanup: logCleanup,
	}
	a.ManageUC = usecase.NewManageMenuUseCase(a.Menus, usecase.ManageMenuConfig{
		SyncMenus: a.SyncMenus,
		Notifier:  a.Client,
		Debounce:  usecase.NewDebouncer(cfg.Debounce()),
	})
	return a, nil
}

func newLogger(cfg *config.Config, opts Options) (zerolog.Logger, func(), error) {
	lvl := logging.ParseLevel(cfg.Logging.Level)
	if opts.Quiet && lvl < zerolog.WarnLevel {
		lvl = zerolog.WarnLevel
	}
	logCfg := logging.Config{Level: lvl, Format: cfg.Logging.Format, TimeFormat: "15:04:05"}

	if !opts.Daemon {
		return logging.New(logCfg), func() {}, nil
	}
	return logging.NewWithFile(logCfg, logging.FileConfig{
		Enabled:       cfg.Logging.EnableFileLog,
		LogDir:        cfg.Logging.LogDir,
		FileName:      logFileName,
		MaxSizeMB:     cfg.Logging.MaxSizeMB,
		MaxBackups:    cfg.Logging.MaxBackups,
		MaxAgeDays:    cfg.Logging.MaxAge,
		Compress:      cfg.Logging.Compress,
		WriteToStderr: true,
	})
}

// Close flushes pending edits and releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.ManageUC != nil {
		if err := a.ManageUC.Flush(a.ctx); err != nil {
			errs = append(errs, fmt.Errorf("flush pending edits: %w", err))
		}
	}
	if a.Sync != nil {
		errs = append(errs, a.Sync.Close())
	}
	if a.Local != nil {
		errs = append(errs, a.Local.Close())
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
