package device

import "github.com/websnap/screenshots-ms-go/internal/model"

// devices is the fixed profile table. Loaded once, never mutated, so
// concurrent reads need no synchronisation. Order is the presentation
// order returned by ListAll.
var devices = []model.Device{
	{ID: "blackberry_playbook", Name: "Blackberry Playbook", Width: 600, Height: 1024, Scale: 1},
	{ID: "blackberry_playbook_landscape", Name: "Blackberry PlayBook landscape", Width: 1024, Height: 600, Scale: 1},
	{ID: "ipad_pro", Name: "iPad Pro", Width: 1024, Height: 1366, Scale: 2},
	{ID: "ipad_pro_landscape", Name: "iPad Pro landscape", Width: 1366, Height: 1024, Scale: 2},
	{ID: "iphone_6", Name: "iPhone 6", Width: 375, Height: 667, Scale: 2},
	{ID: "iphone_6_landscape", Name: "iPhone 6 landscape", Width: 667, Height: 375, Scale: 2},
	{ID: "iPhone 13 Pro Max", Name: "iPhone 13 Pro Max", Width: 428, Height: 926, Scale: 3},
	{ID: "pixel_5", Name: "Pixel 5", Width: 393, Height: 851, Scale: 3},
	{ID: "desktop", Name: "Desktop", Width: 1920, Height: 1080, Scale: 1},
}

var byID = make(map[string]model.Device, len(devices))

func init() {
	for _, d := range devices {
		byID[d.ID] = d
	}
}

// Resolve looks up a profile by its identifier.
func Resolve(id string) (model.Device, bool) {
	d, ok := byID[id]
	return d, ok
}

// ListAll returns every known profile in declaration order. The slice is a
// copy; callers may not reach the underlying table.
func ListAll() []model.Device {
	out := make([]model.Device, len(devices))
	copy(out, devices)
	return out
}
