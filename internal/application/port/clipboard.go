package port

import "context"

// SelectionReader reads the text the user currently has selected.
// On X11 and Wayland this is the primary selection.
type SelectionReader interface {
	// ReadSelection returns the selected text, or an empty string.
	ReadSelection(ctx context.Context) (string, error)
}
