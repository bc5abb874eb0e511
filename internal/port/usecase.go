package port

import "context"

// ScreenshotGetter serves a screenshot for a page under a device profile,
// rendering on a cache miss and writing the artifact through to storage.
type ScreenshotGetter interface {
	GetScreenshot(ctx context.Context, in GetScreenshotInput) (*GetScreenshotOutput, error)
}
type GetScreenshotInput struct {
	URL      string
	DeviceID string
	FullPage bool
}
type GetScreenshotOutput struct {
	PNG       []byte
	Key       string
	FromCache bool
}

// DeviceLister exposes the device catalog to the UI collaborator.
type DeviceLister interface {
	ListDevices(ctx context.Context) []DeviceOutput
}
type DeviceOutput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
