// Package ipc carries requests between selsearch processes and the daemon:
// HTTP over a unix socket, with a websocket stream of surface snapshots.
package ipc

import "github.com/bnema/selsearch/internal/infrastructure/surface"

// Routes served by the daemon.
const (
	PathHealth   = "/healthz"
	PathMessages = "/v1/messages"
	PathClicks   = "/v1/clicks"
	PathMenu     = "/v1/menu"
	PathSettings = "/v1/settings"
	PathEvents   = "/v1/events"
)

// HealthResponse is returned by PathHealth.
type HealthResponse struct {
	Status string `json:"status"`
	State  string `json:"state"`
}

// ClickResponse describes what a click opened.
type ClickResponse struct {
	OpenedSettings bool     `json:"openedSettings,omitempty"`
	URLs           []string `json:"urls,omitempty"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Event is one frame of the PathEvents stream.
type Event struct {
	Type     string           `json:"type"`
	Snapshot surface.Snapshot `json:"snapshot"`
}

// EventSnapshot is the only event type emitted so far.
const EventSnapshot = "snapshot"

// placeholder host for HTTP requests sent over the unix socket.
const socketHost = "selsearch"
