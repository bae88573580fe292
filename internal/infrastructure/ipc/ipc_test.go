package ipc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/selsearch/internal/application/usecase"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/domain/menu"
	"github.com/bnema/selsearch/internal/infrastructure/surface"
)

type fakeDaemon struct {
	mu          sync.Mutex
	messages    []entity.Message
	clicks      []entity.MenuClick
	settings    int
	clickResult usecase.DispatchResult
	clickErr    error
	settingsErr error
}

func (d *fakeDaemon) setClick(result usecase.DispatchResult, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clickResult, d.clickErr = result, err
}

func (d *fakeDaemon) setSettingsErr(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.settingsErr = err
}

func (d *fakeDaemon) counts() (messages, clicks, settings int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.messages), len(d.clicks), d.settings
}

func (d *fakeDaemon) lastClick() entity.MenuClick {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clicks[len(d.clicks)-1]
}

func (d *fakeDaemon) State() usecase.CoordinatorState { return usecase.StateReady }

func (d *fakeDaemon) HandleMessage(_ context.Context, msg entity.Message) entity.MessageResponse {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, msg)
	if msg.Action != entity.ActionUpdateContextMenus {
		return entity.MessageResponse{Status: entity.StatusUnknownAction}
	}
	return entity.MessageResponse{Status: entity.StatusMenusUpdated}
}

func (d *fakeDaemon) HandleClick(_ context.Context, click entity.MenuClick) (usecase.DispatchResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clicks = append(d.clicks, click)
	return d.clickResult, d.clickErr
}

func (d *fakeDaemon) OpenSettings(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.settings++
	return d.settingsErr
}

type fixture struct {
	daemon  *fakeDaemon
	surface *surface.Memory
	client  *Client
}

func startServer(t *testing.T) *fixture {
	t.Helper()

	// Unix socket paths are limited in length; t.TempDir can exceed it.
	dir, err := os.MkdirTemp("", "selsearch-ipc")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	socket := filepath.Join(dir, "daemon.sock")

	f := &fixture{daemon: &fakeDaemon{}, surface: surface.NewMemory()}
	srv := NewServer(ServerConfig{SocketPath: socket, ClickTimeout: time.Second}, f.daemon, f.surface)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})

	f.client = NewClient(socket)
	require.Eventually(t, func() bool {
		_, err := f.client.Health(context.Background())
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	return f
}

func TestServer_Health(t *testing.T) {
	f := startServer(t)

	health, err := f.client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, usecase.StateReady.String(), health.State)
}

func TestServer_Messages(t *testing.T) {
	f := startServer(t)
	ctx := context.Background()

	resp, err := f.client.Notify(ctx, entity.Message{Action: entity.ActionUpdateContextMenus})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusMenusUpdated, resp.Status)

	resp, err = f.client.Notify(ctx, entity.Message{Action: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusUnknownAction, resp.Status)
	messages, _, _ := f.daemon.counts()
	assert.Equal(t, 2, messages)
}

func TestServer_Clicks(t *testing.T) {
	tests := []struct {
		name       string
		result     usecase.DispatchResult
		err        error
		wantStatus int
		wantURLs   []string
	}{
		{
			name: "opens tabs",
			result: usecase.DispatchResult{Requests: []entity.NavigationRequest{
				{URL: "https://a.example/?q=x", Index: 2, OpenerTabID: 7},
				{URL: "https://b.example/?q=x", Index: 2, OpenerTabID: 7},
			}},
			wantURLs: []string{"https://a.example/?q=x", "https://b.example/?q=x"},
		},
		{
			name:       "unknown item",
			err:        fmt.Errorf("%w: nope", menu.ErrNodeNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "not ready",
			err:        fmt.Errorf("%w: %w", usecase.ErrNotReady, context.DeadlineExceeded),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "tab failure",
			err:        errors.New("browser exploded"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := startServer(t)
			f.daemon.setClick(tt.result, tt.err)

			click := entity.MenuClick{MenuItemID: "a", SelectionText: "x", Tab: entity.TabRef{ID: 7, Index: 1}}
			resp, err := f.client.Click(context.Background(), click)

			if tt.wantStatus != 0 {
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tt.wantStatus, statusErr.StatusCode)
				assert.Contains(t, statusErr.Message, tt.err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURLs, resp.URLs)
			_, clicks, _ := f.daemon.counts()
			require.Equal(t, 1, clicks)
			assert.Equal(t, click, f.daemon.lastClick())
		})
	}
}

func TestServer_MenuAndSettings(t *testing.T) {
	f := startServer(t)
	ctx := context.Background()

	for _, e := range menu.Plan(nil, menu.DefaultLabels()) {
		require.NoError(t, f.surface.Create(ctx, e))
	}

	snap, err := f.client.Menu(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Entries, 3)
	assert.Equal(t, menu.RootMenuID, snap.Entries[0].ID)
	assert.Equal(t, menu.OptionsMenuID, snap.Entries[2].ID)

	require.NoError(t, f.client.OpenSettings(ctx))
	_, _, settings := f.daemon.counts()
	assert.Equal(t, 1, settings)

	f.daemon.setSettingsErr(errors.New("no terminal"))
	var statusErr *StatusError
	require.ErrorAs(t, f.client.OpenSettings(ctx), &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}

func TestServer_EventsStreamSnapshots(t *testing.T) {
	f := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	received := make(chan Event, 8)
	errCh := make(chan error, 1)
	go func() {
		errCh <- f.client.Events(ctx, func(ev Event) error {
			received <- ev
			return nil
		})
	}()

	first := <-received
	assert.Equal(t, EventSnapshot, first.Type)
	assert.Empty(t, first.Snapshot.Entries)

	require.NoError(t, f.surface.Create(context.Background(), entity.MenuEntry{ID: "root", Type: entity.MenuEntryNormal}))

	select {
	case ev := <-received:
		require.Len(t, ev.Snapshot.Entries, 1)
		assert.Equal(t, "root", ev.Snapshot.Entries[0].ID)
	case <-ctx.Done():
		t.Fatal("no snapshot after change")
	}

	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
}

func TestHandler_RejectsInvalidBody(t *testing.T) {
	srv := NewServer(ServerConfig{}, &fakeDaemon{}, surface.NewMemory())

	for _, path := range []string{PathMessages, PathClicks} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "invalid request body")
	}
}

func TestClient_DaemonUnavailable(t *testing.T) {
	client := NewClient(filepath.Join(t.TempDir(), "missing.sock"))

	_, err := client.Notify(context.Background(), entity.Message{Action: entity.ActionUpdateContextMenus})
	assert.ErrorIs(t, err, ErrDaemonUnavailable)

	err = client.Events(context.Background(), func(Event) error { return nil })
	assert.ErrorIs(t, err, ErrDaemonUnavailable)
}
