package logging

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// With attaches a child logger carrying fields, added in key order.
func With(ctx context.Context, fields map[string]any) context.Context {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	child := FromContext(ctx).With()
	for _, k := range keys {
		child = child.Interface(k, fields[k])
	}
	return WithContext(ctx, child.Logger())
}

func withStr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}

// WithComponent tags log lines with the emitting component.
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithMenuItemID tags log lines with the menu item being handled.
func WithMenuItemID(ctx context.Context, id string) context.Context {
	return withStr(ctx, "menu_item_id", id)
}

// WithRequestID tags log lines with an IPC request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withStr(ctx, "request_id", requestID)
}
