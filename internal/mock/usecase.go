package mock

import (
	"context"

	"github.com/websnap/screenshots-ms-go/internal/port"
)

// ScreenshotGetter implements port.ScreenshotGetter for tests.
type ScreenshotGetter struct {
	// stored values
	Out port.GetScreenshotOutput

	// captured inputs
	In port.GetScreenshotInput

	// errors
	Err error

	// call flags
	Called bool
}

func (m *ScreenshotGetter) GetScreenshot(ctx context.Context, in port.GetScreenshotInput) (*port.GetScreenshotOutput, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return nil, m.Err
	}
	return &m.Out, nil
}

// DeviceLister implements port.DeviceLister for tests.
type DeviceLister struct {
	// stored values
	Out []port.DeviceOutput

	// call flags
	Called bool
}

func (m *DeviceLister) ListDevices(ctx context.Context) []port.DeviceOutput {
	m.Called = true
	return m.Out
}
