package ipc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/infrastructure/surface"
)

// ErrDaemonUnavailable is returned when nothing listens on the socket.
var ErrDaemonUnavailable = errors.New("selsearch daemon is not running")

const defaultClientTimeout = 10 * time.Second

// StatusError is a non-2xx reply from the daemon.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("daemon returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to the daemon. It implements port.BackgroundNotifier.
type Client struct {
	socketPath string
	http       *http.Client
	dialer     *websocket.Dialer
}

// NewClient creates a client for the daemon listening on socketPath.
func NewClient(socketPath string) *Client {
	dial := func(ctx context.Context, _, _ string) (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, "unix", socketPath)
	}
	return &Client{
		socketPath: socketPath,
		http: &http.Client{
			Transport: &http.Transport{DialContext: dial},
			Timeout:   defaultClientTimeout,
		},
		dialer: &websocket.Dialer{
			NetDialContext:   dial,
			HandshakeTimeout: defaultClientTimeout,
		},
	}
}

// SocketPath returns the socket the client dials.
func (c *Client) SocketPath() string { return c.socketPath }

// Health returns the daemon state.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, PathHealth, nil, &resp)
	return resp, err
}

// Notify sends msg to the daemon.
func (c *Client) Notify(ctx context.Context, msg entity.Message) (entity.MessageResponse, error) {
	var resp entity.MessageResponse
	if err := c.do(ctx, http.MethodPost, PathMessages, msg, &resp); err != nil {
		return entity.MessageResponse{}, fmt.Errorf("failed to notify daemon: %w", err)
	}
	return resp, nil
}

// Click delivers a menu click.
func (c *Client) Click(ctx context.Context, click entity.MenuClick) (ClickResponse, error) {
	var resp ClickResponse
	err := c.do(ctx, http.MethodPost, PathClicks, click, &resp)
	return resp, err
}

// Menu returns the current surface snapshot.
func (c *Client) Menu(ctx context.Context) (surface.Snapshot, error) {
	var snap surface.Snapshot
	err := c.do(ctx, http.MethodGet, PathMenu, nil, &snap)
	return snap, err
}

// OpenSettings asks the daemon to open the settings editor.
func (c *Client) OpenSettings(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, PathSettings, nil, nil)
}

// Events streams surface snapshots to fn until ctx is cancelled, the daemon
// goes away or fn returns an error.
func (c *Client) Events(ctx context.Context, fn func(Event) error) error {
	conn, resp, err := c.dialer.DialContext(ctx, "ws://"+socketHost+PathEvents, nil)
	if err != nil {
		if resp != nil {
			return &StatusError{StatusCode: resp.StatusCode, Message: resp.Status}
		}
		return unavailable(err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = conn.Close()
	})
	defer stop()

	for {
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := fn(ev); err != nil {
			return err
		}
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, "http://"+socketHost+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = resp.Status
		}
		return &StatusError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func unavailable(err error) error {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: %w", ErrDaemonUnavailable, err)
	}
	return err
}
