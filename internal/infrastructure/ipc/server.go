package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"

	"github.com/bnema/selsearch/internal/application/usecase"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/infrastructure/surface"
	"github.com/bnema/selsearch/internal/logging"
)

const (
	maxBodyBytes      = 64 << 10
	eventWriteTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Daemon is the coordinator as seen by the server.
type Daemon interface {
	State() usecase.CoordinatorState
	HandleMessage(ctx context.Context, msg entity.Message) entity.MessageResponse
	HandleClick(ctx context.Context, click entity.MenuClick) (usecase.DispatchResult, error)
	OpenSettings(ctx context.Context) error
}

// SnapshotSource exposes the menu surface to renderers.
type SnapshotSource interface {
	Snapshot() surface.Snapshot
	Subscribe() (<-chan surface.Snapshot, func())
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	SocketPath   string
	ClickTimeout time.Duration
}

// Server serves the daemon API on a unix socket.
type Server struct {
	cfg      ServerConfig
	daemon   Daemon
	surface  SnapshotSource
	router   chi.Router
	upgrader websocket.Upgrader
}

// NewServer creates a server. Routes are built immediately so Handler can
// be used without a socket.
func NewServer(cfg ServerConfig, daemon Daemon, source SnapshotSource) *Server {
	s := &Server{
		cfg:     cfg,
		daemon:  daemon,
		surface: source,
		upgrader: websocket.Upgrader{
			// Only local processes can reach the socket.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.router = s.buildRouter()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get(PathHealth, s.handleHealth)
	r.Get(PathMenu, s.handleMenu)
	r.Get(PathEvents, s.handleEvents)
	r.Post(PathMessages, s.handleMessage)
	r.Post(PathClicks, s.handleClick)
	r.Post(PathSettings, s.handleSettings)

	return r
}

// Serve listens on the socket until ctx is cancelled. A stale socket file
// left by a previous daemon is replaced; callers hold the daemon lock.
func (s *Server) Serve(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(s.cfg.SocketPath), 0o700); err != nil {
		return fmt.Errorf("failed to create socket directory: %w", err)
	}
	if err := os.Remove(s.cfg.SocketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove stale socket: %w", err)
	}

	ln, err := net.Listen("unix", s.cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.SocketPath, err)
	}
	defer os.Remove(s.cfg.SocketPath)

	if err := os.Chmod(s.cfg.SocketPath, 0o600); err != nil {
		ln.Close()
		return fmt.Errorf("failed to restrict socket permissions: %w", err)
	}

	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()
	log.Info().Str("socket", s.cfg.SocketPath).Msg("ipc server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ipc server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down ipc server: %w", err)
	}
	log.Debug().Msg("ipc server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", State: s.daemon.State().String()})
}

func (s *Server) handleMenu(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.surface.Snapshot())
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var msg entity.Message
	if err := decodeBody(r, &msg); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.daemon.HandleMessage(r.Context(), msg))
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	var click entity.MenuClick
	if err := decodeBody(r, &click); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx := logging.WithMenuItemID(r.Context(), click.MenuItemID)
	if s.cfg.ClickTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ClickTimeout)
		defer cancel()
	}

	result, err := s.daemon.HandleClick(ctx, click)
	resp := ClickResponse{
		OpenedSettings: result.OpenedSettings,
		URLs:           lo.Map(result.Requests, func(req entity.NavigationRequest, _ int) string { return req.URL }),
	}
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, menu.ErrNodeNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, usecase.ErrNotReady):
		writeError(w, http.StatusServiceUnavailable, err)
	default:
		logging.FromContext(ctx).Warn().Err(err).Msg("click handling failed")
		writeError(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	if err := s.daemon.OpenSettings(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	snapshots, unsubscribe := s.surface.Subscribe()
	defer unsubscribe()

	// Clients never send anything; reading detects the close frame.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Debug().Err(err).Msg("websocket read")
				}
				return
			}
		}
	}()

	for {
		select {
		case <-r.Context().Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "daemon stopping"),
				time.Now().Add(time.Second))
			return
		case <-closed:
			return
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(eventWriteTimeout))
			if err := conn.WriteJSON(Event{Type: EventSnapshot, Snapshot: snap}); err != nil {
				log.Debug().Err(err).Msg("websocket write")
				return
			}
		}
	}
}

// requestLogger attaches a request-scoped logger and logs each request at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithComponent(r.Context(), "ipc")
		if id := middleware.GetReqID(ctx); id != "" {
			ctx = logging.WithRequestID(ctx, id)
		}

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		logging.FromContext(ctx).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
