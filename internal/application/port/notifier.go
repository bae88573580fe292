package port

import (
	"context"

	"github.com/bnema/selsearch/internal/domain/entity"
)

// BackgroundNotifier sends a message from the settings editor to the daemon.
type BackgroundNotifier interface {
	Notify(ctx context.Context, msg entity.Message) (entity.MessageResponse, error)
}
