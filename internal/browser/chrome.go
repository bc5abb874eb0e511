package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"

	"github.com/websnap/screenshots-ms-go/internal/logger"
	"github.com/websnap/screenshots-ms-go/internal/model"
	"github.com/websnap/screenshots-ms-go/internal/port"
)

// ChromeRenderer drives a Chromium instance over the DevTools protocol.
// Each Render call gets its own browser context (one navigation, one
// capture) and tears it down on every exit path, so a hung page can never
// leak a tab past its deadline.
type ChromeRenderer struct {
	// devtoolsURL points at a remote browser (ws://...). Empty means launch
	// a local headless instance per call.
	devtoolsURL string
}

// compile-time check: *ChromeRenderer must satisfy port.Renderer
var _ port.Renderer = (*ChromeRenderer)(nil)

func NewChromeRenderer(devtoolsURL string) *ChromeRenderer {
	return &ChromeRenderer{devtoolsURL: devtoolsURL}
}

func (r *ChromeRenderer) Render(ctx context.Context, pageURL string, vp model.Viewport, fullPage bool) ([]byte, error) {
	allocCtx, cancelAlloc := r.allocator(ctx)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	logger.Debugf(ctx, "rendering %q at %dx%d@%g (fullPage=%t)", pageURL, vp.Width, vp.Height, vp.Scale, fullPage)

	var img []byte
	if err := chromedp.Run(taskCtx, screenshotTasks(pageURL, vp, fullPage, &img)...); err != nil {
		return nil, fmt.Errorf("capturing %q: %w", pageURL, err)
	}
	return img, nil
}

func (r *ChromeRenderer) allocator(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.devtoolsURL != "" {
		return chromedp.NewRemoteAllocator(ctx, r.devtoolsURL)
	}
	return chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
}

func screenshotTasks(pageURL string, vp model.Viewport, fullPage bool, out *[]byte) chromedp.Tasks {
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(vp.Width), int64(vp.Height), chromedp.EmulateScale(vp.Scale)),
		chromedp.Navigate(pageURL),
	}
	if fullPage {
		// quality 100 makes chromedp emit PNG rather than JPEG
		tasks = append(tasks, chromedp.FullScreenshot(out, 100))
	} else {
		tasks = append(tasks, chromedp.CaptureScreenshot(out))
	}
	return tasks
}
