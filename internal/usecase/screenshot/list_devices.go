package screenshot

import (
	"context"

	"github.com/websnap/screenshots-ms-go/internal/device"
	"github.com/websnap/screenshots-ms-go/internal/port"
)

type deviceListerSrv struct{}

// compile-time check: *deviceListerSrv must satisfy port.DeviceLister
var _ port.DeviceLister = (*deviceListerSrv)(nil)

func NewDeviceLister() port.DeviceLister {
	return &deviceListerSrv{}
}

// ListDevices projects the catalog onto the public {id, name} shape, in
// catalog order.
func (s *deviceListerSrv) ListDevices(ctx context.Context) []port.DeviceOutput {
	all := device.ListAll()
	out := make([]port.DeviceOutput, 0, len(all))
	for _, d := range all {
		out = append(out, port.DeviceOutput{ID: d.ID, Name: d.Name})
	}
	return out
}
