package mock

import (
	"context"

	"github.com/websnap/screenshots-ms-go/internal/model"
)

// Renderer implements the browser renderer interface for tests.
type Renderer struct {
	// stored values
	RenderOut []byte

	// captured inputs
	GotURL      string
	GotViewport model.Viewport
	GotFullPage bool

	// errors
	RenderErr error

	// call flags
	RenderCalled bool
	RenderCalls  int
}

func (m *Renderer) Render(ctx context.Context, url string, vp model.Viewport, fullPage bool) ([]byte, error) {
	m.RenderCalled = true
	m.RenderCalls++
	m.GotURL = url
	m.GotViewport = vp
	m.GotFullPage = fullPage
	if m.RenderErr != nil {
		return nil, m.RenderErr
	}
	return m.RenderOut, nil
}
