package mock

import (
	"context"

	"github.com/websnap/screenshots-ms-go/internal/port"
)

// HTTPRenderer implements port.HTTPRenderer for tests.
type HTTPRenderer struct {
	// stored values
	DevicesOut []byte

	// etag values
	EtagDevices string

	// errors
	ListDevicesErr error

	// call flags
	ListDevicesCalled bool
}

func (m *HTTPRenderer) RenderListDevices(ctx context.Context, lister port.DeviceLister) ([]byte, string, error) {
	m.ListDevicesCalled = true
	return m.DevicesOut, m.EtagDevices, m.ListDevicesErr
}
