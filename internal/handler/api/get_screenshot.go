package api

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"net/http"

	"github.com/websnap/screenshots-ms-go/internal/cachekey"
	"github.com/websnap/screenshots-ms-go/internal/device"
	"github.com/websnap/screenshots-ms-go/internal/logger"
	"github.com/websnap/screenshots-ms-go/internal/port"
	"github.com/websnap/screenshots-ms-go/internal/usecase/screenshot"
	"github.com/websnap/screenshots-ms-go/internal/validation"
)

// screenshots never change for a given URL+viewport, so clients may hold
// them for a long time (~360 days, as browsers cap higher values anyway)
const screenshotCacheControl = "public, max-age=31104000"

type GetScreenshotRequest struct {
	URL        string `json:"url" validate:"required,url"`
	DeviceType string `json:"deviceType" validate:"required"`
	Key        string `json:"key" validate:"required"`
	FullPage   string `json:"fullPage" validate:"omitempty,oneof=true false"`
}

func GetScreenshotHandler(svc port.ScreenshotGetter, ca port.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := GetScreenshotRequest{
			URL:        q.Get("url"),
			DeviceType: q.Get("deviceType"),
			Key:        q.Get("key"),
			FullPage:   q.Get("fullPage"),
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			WriteError(r.Context(), w, http.StatusBadRequest, validation.ErrorsToString(errs), nil)
			return
		}

		in := port.GetScreenshotInput{
			URL:      req.URL,
			DeviceID: req.DeviceType,
			FullPage: req.FullPage == "true",
		}

		// a matching ETag is answered from the lookaside alone, before any
		// storage or render work: artifacts are immutable, so a known etag
		// can never go stale
		if match := r.Header.Get("If-None-Match"); match != "" {
			if key, etag, ok := revalidate(r.Context(), ca, in, match); ok {
				w.Header().Set("ETag", etag)
				w.Header().Set("Cache-Control", screenshotCacheControl)
				w.WriteHeader(http.StatusNotModified)
				logger.Infof(r.Context(), "✅  Screenshot %q unchanged, returning 304", key)
				return
			}
		}

		out, err := svc.GetScreenshot(r.Context(), in)
		if err != nil {
			var vErr *screenshot.ValidationError
			switch {
			case errors.As(err, &vErr):
				WriteError(r.Context(), w, http.StatusBadRequest, vErr.Error(), nil)
			case errors.Is(err, screenshot.ErrRenderFailed):
				WriteError(r.Context(), w, http.StatusBadGateway, "Could not render the page", err)
			default:
				WriteError(r.Context(), w, http.StatusInternalServerError, "Could not produce the screenshot", err)
			}
			return
		}

		etag := screenshotEtag(r.Context(), ca, out)

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", screenshotCacheControl)
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			logger.Infof(r.Context(), "✅  Screenshot %q unchanged, returning 304", out.Key)
			return
		}

		RespondPNG(r.Context(), w, http.StatusOK, out.PNG)
		logger.Infof(r.Context(), "✅  Served screenshot %q (fromCache=%t)", out.Key, out.FromCache)
	}
}

// revalidate derives the artifact key for the request and reports whether
// the client's If-None-Match value matches its cached ETag. A device id
// the catalog does not know falls through to the use case, which owns the
// rejection.
func revalidate(ctx context.Context, ca port.Cache, in port.GetScreenshotInput, match string) (key, etag string, ok bool) {
	d, found := device.Resolve(in.DeviceID)
	if !found {
		return "", "", false
	}
	key = cachekey.Derive(in.URL, d.Viewport(), in.FullPage)
	etag, err := ca.GetEtagScreenshot(ctx, key)
	if err != nil || etag == "" || etag != match {
		return "", "", false
	}
	return key, etag, true
}

// screenshotEtag returns the cached ETag for the artifact or computes and
// caches it. Artifacts are immutable, so the mapping never goes stale.
func screenshotEtag(ctx context.Context, ca port.Cache, out *port.GetScreenshotOutput) string {
	if etag, err := ca.GetEtagScreenshot(ctx, out.Key); err == nil && etag != "" {
		return etag
	}
	etag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(out.PNG))
	ca.SetEtagScreenshot(ctx, out.Key, etag)
	return etag
}
