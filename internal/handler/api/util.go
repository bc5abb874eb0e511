package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/websnap/screenshots-ms-go/internal/logger"
)

type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func WriteError(ctx context.Context, w http.ResponseWriter, status int, msg string, err error) {
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(ctx, w, status, ErrorResponse{OK: false, Error: msg})
}

func RespondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(ctx, "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(ctx context.Context, w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(ctx, "❌  Failed to write JSON payload: %v", err)
	}
}

func RespondPNG(ctx context.Context, w http.ResponseWriter, status int, img []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(status)
	if _, err := w.Write(img); err != nil {
		logger.Errorf(ctx, "❌  Failed to write PNG payload: %v", err)
	}
}
