package port

import "context"

// Cache is a lookaside accelerator in front of the catalog and the object
// store. Losing every entry must never change externally visible
// behaviour, only latency. Screenshot artifacts are immutable, so cached
// values carry no expiry.
type Cache interface {
	GetDeviceList(ctx context.Context) ([]byte, error)
	GetEtagDeviceList(ctx context.Context) (string, error)
	SetDeviceList(ctx context.Context, data []byte)
	SetEtagDeviceList(ctx context.Context, etag string)

	GetEtagScreenshot(ctx context.Context, key string) (string, error)
	SetEtagScreenshot(ctx context.Context, key, etag string)
}
