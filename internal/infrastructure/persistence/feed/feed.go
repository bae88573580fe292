// Package feed delivers storage changes to subscribers in order, on a
// dedicated goroutine, so that writers never block on handlers.
package feed

import (
	"context"
	"sync"

	"github.com/bnema/selsearch/internal/application/port"
	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/logging"
)

// Feed fans out storage changes to registered handlers.
type Feed struct {
	ctx context.Context

	mu       sync.Mutex
	handlers []port.StorageChangeHandler
	pending  []entity.StorageChange
	closed   bool

	signal chan struct{}
	done   chan struct{}
	wg     sync.WaitGroup
}

// New starts the delivery goroutine. ctx is passed to handlers and carries
// the logger; cancelling it stops delivery like Close does.
func New(ctx context.Context) *Feed {
	f := &Feed{
		ctx:    ctx,
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	f.wg.Add(1)
	go f.run()
	return f
}

// Subscribe registers a handler for all future changes.
func (f *Feed) Subscribe(handler port.StorageChangeHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers = append(f.handlers, handler)
}

// Publish queues changes for delivery. It never blocks.
func (f *Feed) Publish(changes ...entity.StorageChange) {
	if len(changes) == 0 {
		return
	}
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.pending = append(f.pending, changes...)
	f.mu.Unlock()

	select {
	case f.signal <- struct{}{}:
	default:
	}
}

func (f *Feed) run() {
	defer f.wg.Done()
	for {
		select {
		case <-f.done:
			return
		case <-f.ctx.Done():
			return
		case <-f.signal:
		}

		for {
			f.mu.Lock()
			batch := f.pending
			f.pending = nil
			handlers := append([]port.StorageChangeHandler(nil), f.handlers...)
			f.mu.Unlock()

			if len(batch) == 0 {
				break
			}
			for _, change := range batch {
				f.deliver(handlers, change)
			}
		}
	}
}

func (f *Feed) deliver(handlers []port.StorageChangeHandler, change entity.StorageChange) {
	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logging.FromContext(f.ctx).Error().
						Interface("panic", r).
						Str("key", change.Key).
						Msg("storage change handler panicked")
				}
			}()
			h(f.ctx, change)
		}()
	}
}

// Close stops delivery and waits for the running handler to return.
// Pending changes are dropped.
func (f *Feed) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	f.mu.Unlock()

	close(f.done)
	f.wg.Wait()
}
