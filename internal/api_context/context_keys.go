package api_context

import "context"

type contextKey string

const (
	// RequestKeyKey carries the caller-supplied idempotency token. It is
	// never part of cache key derivation; it only tags log records.
	RequestKeyKey contextKey = "requestKey"
	// RequestIDKey carries the per-request id generated by the middleware.
	RequestIDKey contextKey = "requestID"
)

func RequestKeyFromContext(ctx context.Context) (string, bool) {
	k, ok := ctx.Value(RequestKeyKey).(string)
	return k, ok
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}
