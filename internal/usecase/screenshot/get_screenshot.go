package screenshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/websnap/screenshots-ms-go/internal/cachekey"
	"github.com/websnap/screenshots-ms-go/internal/device"
	"github.com/websnap/screenshots-ms-go/internal/logger"
	"github.com/websnap/screenshots-ms-go/internal/model"
	"github.com/websnap/screenshots-ms-go/internal/port"
)

type screenshotGetterSrv struct {
	strg    port.Storage
	rdr     port.Renderer
	bucket  string
	timeout time.Duration

	// collapses concurrent first renders for the same key onto one browser
	// session; in-process only, cross-instance duplicates are harmless
	// because writes for a key are idempotent
	group singleflight.Group
}

// compile-time check: *screenshotGetterSrv must satisfy port.ScreenshotGetter
var _ port.ScreenshotGetter = (*screenshotGetterSrv)(nil)

func NewScreenshotGetter(strg port.Storage, rdr port.Renderer, bucket string, timeout time.Duration) port.ScreenshotGetter {
	return &screenshotGetterSrv{strg: strg, rdr: rdr, bucket: bucket, timeout: timeout}
}

func (s *screenshotGetterSrv) GetScreenshot(ctx context.Context, in port.GetScreenshotInput) (*port.GetScreenshotOutput, error) {
	vp, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	key := cachekey.Derive(in.URL, vp, in.FullPage)

	img, err := s.lookup(ctx, key)
	if err == nil {
		logger.Debugf(ctx, "screenshot %q served from storage", key)
		return &port.GetScreenshotOutput{PNG: img, Key: key, FromCache: true}, nil
	}
	if !errors.Is(err, ErrObjectNotFound) {
		return nil, fmt.Errorf("error reading screenshot %q: %w", key, err)
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.renderAndStore(ctx, in.URL, vp, in.FullPage, key)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debugf(ctx, "render for %q shared with a concurrent request", key)
	}

	return &port.GetScreenshotOutput{PNG: v.([]byte), Key: key, FromCache: false}, nil
}

func (s *screenshotGetterSrv) validate(in port.GetScreenshotInput) (model.Viewport, error) {
	u, err := url.Parse(in.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return model.Viewport{}, &ValidationError{Field: "url", Reason: "must be an absolute URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return model.Viewport{}, &ValidationError{Field: "url", Reason: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}

	d, ok := device.Resolve(in.DeviceID)
	if !ok {
		return model.Viewport{}, &ValidationError{Field: "deviceType", Reason: fmt.Sprintf("unknown device %q", in.DeviceID)}
	}
	return d.Viewport(), nil
}

func (s *screenshotGetterSrv) lookup(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.strg.GetFile(ctx, s.bucket, key)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rc.Close(); err != nil {
			logger.Warnf(ctx, "error closing object %q: %v", key, err)
		}
	}()

	img, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (s *screenshotGetterSrv) renderAndStore(ctx context.Context, pageURL string, vp model.Viewport, fullPage bool, key string) ([]byte, error) {
	// the render is shared with queued requests, so it must not die with
	// the winning caller; detach from its cancellation but keep its values
	// for logging, bounded by the render timeout
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	img, err := s.rdr.Render(rctx, pageURL, vp, fullPage)
	if err != nil {
		// nothing has been written: a failed render must never be cached
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	opts := map[string]string{"Content-Type": "image/png"}
	if err := s.strg.SaveFile(rctx, s.bucket, key, bytes.NewReader(img), int64(len(img)), opts); err != nil {
		return nil, fmt.Errorf("error saving screenshot %q: %w", key, err)
	}

	// confirm the write is readable before reporting success; a lagging
	// store would otherwise claim "cached" while readers still miss
	exists, err := s.strg.FileExists(rctx, s.bucket, key)
	if err != nil {
		return nil, fmt.Errorf("error confirming screenshot %q: %w", key, err)
	}
	if !exists {
		return nil, fmt.Errorf("screenshot %q: %w", key, ErrStorageInconsistent)
	}

	logger.Infof(ctx, "rendered and stored screenshot %q (%d bytes)", key, len(img))
	return img, nil
}
