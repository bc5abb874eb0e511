package port

import (
	"context"

	"github.com/websnap/screenshots-ms-go/internal/model"
)

// Renderer is the browser-automation capability: navigate to a URL under
// the given viewport and capture PNG bytes. Implementations must respect
// ctx cancellation and release any browser resources on every exit path.
type Renderer interface {
	Render(ctx context.Context, url string, vp model.Viewport, fullPage bool) ([]byte, error)
}
