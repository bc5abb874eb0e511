package screenshot

import (
	"errors"
	"fmt"
)

var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")

	// ErrRenderFailed wraps any navigation, launch or timeout failure from
	// the browser backend. Nothing is written to storage when it occurs, so
	// callers may retry freely.
	ErrRenderFailed = errors.New("renderer: render failed")

	// ErrStorageInconsistent means the store accepted a write but the
	// immediate read-back came up absent. Safe to retry.
	ErrStorageInconsistent = errors.New("storage: write not readable after put")
)

// ValidationError rejects a request before any cache or render work,
// naming the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
