package port

import (
	"context"

	"github.com/bnema/selsearch/internal/domain/entity"
)

// TabOpener opens a URL in a new tab.
type TabOpener interface {
	OpenTab(ctx context.Context, req entity.NavigationRequest) error
}

// SettingsOpener brings up the settings editor.
type SettingsOpener interface {
	OpenSettings(ctx context.Context) error
}
