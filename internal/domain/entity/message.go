package entity

// MessageAction names a request sent from the settings editor to the daemon.
type MessageAction string

const (
	ActionUpdateContextMenus MessageAction = "updateContextMenus"
)

// Message is the request envelope.
type Message struct {
	Action MessageAction `json:"action"`
}

// Acknowledgement statuses.
const (
	StatusMenusUpdated      = "Context menus updated."
	StatusMenusUpdateFailed = "Failed to update context menus."
	StatusUnknownAction     = "Unknown action."
)

// MessageResponse acknowledges a Message.
type MessageResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Failed reports whether the response carries an error.
func (r MessageResponse) Failed() bool {
	return r.Error != ""
}
