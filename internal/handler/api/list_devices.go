package api

import (
	"net/http"

	"github.com/websnap/screenshots-ms-go/internal/logger"
	"github.com/websnap/screenshots-ms-go/internal/port"
)

func ListDevicesHandler(renderer port.HTTPRenderer, svc port.DeviceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, etag, err := renderer.RenderListDevices(r.Context(), svc)
		if err != nil {
			WriteError(r.Context(), w, http.StatusInternalServerError, "Could not list devices", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			logger.Info(r.Context(), "✅  Device list unchanged, returning 304")
			return
		}

		RespondRawJSON(r.Context(), w, http.StatusOK, raw)
		logger.Info(r.Context(), "✅  Successfully returned the device list")
	}
}
