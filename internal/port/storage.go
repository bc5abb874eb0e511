package port

import (
	"context"
	"io"
)

// Storage defines the blob store operations the service relies on. No
// cross-key transactional guarantees are assumed; gets and puts for
// independent keys may run concurrently.
type Storage interface {
	InitBucket(bucket string) error
	FileExists(ctx context.Context, bucket, fileKey string) (bool, error)
	GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error)
	SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
}
