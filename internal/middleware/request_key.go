package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/websnap/screenshots-ms-go/internal/api_context"
	"github.com/websnap/screenshots-ms-go/internal/handler/api"
)

// WithRequestKey requires the `key` query parameter (the caller's
// idempotency token) and stashes it in the request context together with a
// generated request id. The token only tags log records downstream; it
// never reaches cache key derivation.
func WithRequestKey() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.URL.Query().Get("key")
			if key == "" {
				api.WriteError(r.Context(), w, http.StatusBadRequest, "key is required", nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api_context.RequestKeyKey, key)
			ctx = context.WithValue(ctx, api_context.RequestIDKey, uuid.NewString())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
