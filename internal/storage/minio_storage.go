package storage

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/websnap/screenshots-ms-go/internal/port"
	"github.com/websnap/screenshots-ms-go/internal/usecase/screenshot"
)

type MinioStorage struct {
	client minioClient
}

// compile-time check: *MinioStorage must satisfy port.Storage
var _ port.Storage = (*MinioStorage)(nil)

func NewStorage(endpoint, accessKey, secretKey string, useSSL bool) (*MinioStorage, error) {
	log.Println("initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &MinioStorage{client: client}, nil
}

func (s *MinioStorage) InitBucket(bucket string) error {
	ok, err := s.client.BucketExists(context.Background(), bucket)
	if err != nil {
		return mapMinioErr(err)
	}
	if !ok {
		log.Printf("bucket %q does not exist, creating it...", bucket)
		if err := s.client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return mapMinioErr(err)
		}
	}
	return nil
}

func (s *MinioStorage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	log.Printf("checking if file %q exists in bucket %q...", fileKey, bucket)

	_, err := s.client.StatObject(ctx, bucket, fileKey, minio.StatObjectOptions{})
	if err != nil {
		err = mapMinioErr(err)
		if errors.Is(err, screenshot.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *MinioStorage) GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error) {
	log.Printf("getting file %q from bucket %q...", fileKey, bucket)

	obj, err := s.client.GetObject(ctx, bucket, fileKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	// GetObject is lazy: a missing key only surfaces on the first read, so
	// stat the handle now to keep "exists" and "readable" consistent.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, mapMinioErr(err)
	}
	return obj, nil
}

func (s *MinioStorage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	log.Printf("saving file %q into bucket %q...", fileKey, bucket)

	putOpts := minio.PutObjectOptions{}
	if ct := opts["Content-Type"]; ct != "" {
		putOpts.ContentType = ct
	}

	_, err := s.client.PutObject(ctx, bucket, fileKey, reader, fileSize, putOpts)
	if err != nil {
		return mapMinioErr(err)
	}
	return nil
}
