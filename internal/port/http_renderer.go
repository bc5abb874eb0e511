package port

import "context"

// HTTPRenderer mediates between HTTP handlers and the device lister use
// case. It provides caching capabilities and returns both the JSON
// representation of the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderListDevices returns the cached JSON device list and its ETag if
	// available or executes the underlying use case and caches the output
	// otherwise.
	RenderListDevices(ctx context.Context, lister DeviceLister) ([]byte, string, error)
}
