// Package xcontext holds the request scoped values shared by the callback
// server's middleware.
package xcontext

import "context"

type key[T any] struct{ name string }

func set[T any](ctx context.Context, k key[T], v T) context.Context {
	return context.WithValue(ctx, k, v)
}

func get[T any](ctx context.Context, k key[T]) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

var requestIDKey = key[string]{name: "request_id"}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return set(ctx, requestIDKey, requestID)
}

// GetRequestID reports false for contexts that never passed through the
// RequestID middleware.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := get(ctx, requestIDKey)
	return id, ok && id != ""
}
