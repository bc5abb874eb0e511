package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/websnap/screenshots-ms-go/internal/port"
)

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderListDevices fetches the device list either from cache or from the
// wrapped use case. It returns the JSON encoded output and a quoted ETag
// string.
func (r *httpRenderer) RenderListDevices(ctx context.Context, lister port.DeviceLister) ([]byte, string, error) {
	raw, err := r.cache.GetDeviceList(ctx)
	etag, errEtag := r.cache.GetEtagDeviceList(ctx)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out := lister.ListDevices(ctx)

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	r.cache.SetDeviceList(ctx, raw)
	r.cache.SetEtagDeviceList(ctx, etag)

	return raw, etag, nil
}
