package storage

import (
	"fmt"

	"github.com/minio/minio-go/v7"

	"github.com/websnap/screenshots-ms-go/internal/usecase/screenshot"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return screenshot.ErrObjectNotFound
	case "NoSuchBucket":
		return screenshot.ErrBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return screenshot.ErrUnauthorized
	default:
		// catch everything else
		return fmt.Errorf("%w: %v", screenshot.ErrInternal, err)
	}
}
