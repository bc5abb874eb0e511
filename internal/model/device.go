package model

// Device is a named viewport profile used to emulate a display when
// rendering a page. Width and Height are CSS pixels; Scale is the device
// pixel ratio applied on top of them.
type Device struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale"`
}

// Viewport is the part of a Device the renderer cares about.
type Viewport struct {
	Width  int
	Height int
	Scale  float64
}

// Viewport extracts the render viewport from a device profile.
func (d Device) Viewport() Viewport {
	return Viewport{Width: d.Width, Height: d.Height, Scale: d.Scale}
}
