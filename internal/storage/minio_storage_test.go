package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"

	"github.com/websnap/screenshots-ms-go/internal/usecase/screenshot"
)

type mockMinio struct {
	bucketExistsFn func(ctx context.Context, bucketName string) (bool, error)
	makeBucketFn   func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	statObjectFn   func(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	getObjectFn    func(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
	putObjectFn    func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

func (m *mockMinio) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return m.bucketExistsFn(ctx, bucketName)
}
func (m *mockMinio) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return m.makeBucketFn(ctx, bucketName, opts)
}
func (m *mockMinio) StatObject(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return m.statObjectFn(ctx, bucket, key, opts)
}
func (m *mockMinio) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error) {
	return m.getObjectFn(ctx, bucketName, objectName, opts)
}
func (m *mockMinio) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return m.putObjectFn(ctx, bucketName, objectName, reader, objectSize, opts)
}

func noSuchKeyErr() error {
	return minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
}

func TestFileExists_Found(t *testing.T) {
	s := &MinioStorage{client: &mockMinio{
		statObjectFn: func(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
			return minio.ObjectInfo{Size: 42}, nil
		},
	}}

	ok, err := s.FileExists(context.Background(), "screenshots", "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected file to exist")
	}
}

func TestFileExists_NotFound(t *testing.T) {
	s := &MinioStorage{client: &mockMinio{
		statObjectFn: func(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
			return minio.ObjectInfo{}, noSuchKeyErr()
		},
	}}

	ok, err := s.FileExists(context.Background(), "screenshots", "abc")
	if err != nil {
		t.Fatalf("missing key should not be an error, got %v", err)
	}
	if ok {
		t.Error("expected file to not exist")
	}
}

func TestFileExists_OtherError(t *testing.T) {
	s := &MinioStorage{client: &mockMinio{
		statObjectFn: func(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
			return minio.ObjectInfo{}, minio.ErrorResponse{Code: "AccessDenied"}
		},
	}}

	_, err := s.FileExists(context.Background(), "screenshots", "abc")
	if !errors.Is(err, screenshot.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestInitBucket_CreatesWhenMissing(t *testing.T) {
	made := false
	s := &MinioStorage{client: &mockMinio{
		bucketExistsFn: func(ctx context.Context, bucketName string) (bool, error) { return false, nil },
		makeBucketFn: func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
			made = true
			if bucketName != "screenshots" {
				t.Errorf("MakeBucket called with %q", bucketName)
			}
			return nil
		},
	}}

	if err := s.InitBucket("screenshots"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !made {
		t.Error("expected MakeBucket to be called")
	}
}

func TestInitBucket_SkipsWhenPresent(t *testing.T) {
	s := &MinioStorage{client: &mockMinio{
		bucketExistsFn: func(ctx context.Context, bucketName string) (bool, error) { return true, nil },
		makeBucketFn: func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
			t.Error("MakeBucket should not be called")
			return nil
		},
	}}

	if err := s.InitBucket("screenshots"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveFile_ContentType(t *testing.T) {
	var gotOpts minio.PutObjectOptions
	s := &MinioStorage{client: &mockMinio{
		putObjectFn: func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			gotOpts = opts
			return minio.UploadInfo{}, nil
		},
	}}

	err := s.SaveFile(context.Background(), "screenshots", "abc", strings.NewReader("png bytes"), 9, map[string]string{"Content-Type": "image/png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOpts.ContentType != "image/png" {
		t.Errorf("ContentType = %q; want image/png", gotOpts.ContentType)
	}
}

func TestMapMinioErr(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"NoSuchKey", screenshot.ErrObjectNotFound},
		{"NoSuchBucket", screenshot.ErrBucketNotFound},
		{"AccessDenied", screenshot.ErrUnauthorized},
		{"InvalidAccessKeyId", screenshot.ErrUnauthorized},
		{"SignatureDoesNotMatch", screenshot.ErrUnauthorized},
		{"SomethingElse", screenshot.ErrInternal},
	}
	for _, tc := range tests {
		got := mapMinioErr(minio.ErrorResponse{Code: tc.code})
		if !errors.Is(got, tc.want) {
			t.Errorf("code %s mapped to %v; want %v", tc.code, got, tc.want)
		}
	}
	if mapMinioErr(nil) != nil {
		t.Error("nil should map to nil")
	}
}
