package cache

import (
	"context"

	"github.com/websnap/screenshots-ms-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetDeviceList(ctx context.Context) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagDeviceList(ctx context.Context) (string, error) { return "", nil }

func (n *NoopCache) SetDeviceList(ctx context.Context, data []byte) {}

func (n *NoopCache) SetEtagDeviceList(ctx context.Context, etag string) {}

func (n *NoopCache) GetEtagScreenshot(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (n *NoopCache) SetEtagScreenshot(ctx context.Context, key, etag string) {}
