package mock

import (
	"bytes"
	"context"
	"io"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	GetOut    io.ReadSeeker
	ExistsOut bool

	// captured inputs
	Bucket     string
	ObjectKey  string
	SavedBytes []byte
	SavedOpts  map[string]string

	// errors
	InitBucketErr error
	GetErr        error
	SaveErr       error
	FileExistsErr error

	// call flags
	InitBucketCalled bool
	GetCalled        bool
	SaveCalled       bool
	FileExistsCalled bool
}

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	m.Bucket = bucket
	return m.InitBucketErr
}

func (m *Storage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	m.FileExistsCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	if m.FileExistsErr != nil {
		return false, m.FileExistsErr
	}
	return m.ExistsOut, nil
}

func (m *Storage) GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error) {
	m.GetCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.GetOut != nil {
		return noopRSC{m.GetOut}, nil
	}
	return noopRSC{bytes.NewReader([]byte("dummy"))}, nil
}

func (m *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	m.SavedOpts = opts
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.SavedBytes = data
	return m.SaveErr
}
