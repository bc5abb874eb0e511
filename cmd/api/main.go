package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/websnap/screenshots-ms-go/internal/browser"
	"github.com/websnap/screenshots-ms-go/internal/cache"
	"github.com/websnap/screenshots-ms-go/internal/config"
	"github.com/websnap/screenshots-ms-go/internal/handler"
	"github.com/websnap/screenshots-ms-go/internal/handler/api"
	"github.com/websnap/screenshots-ms-go/internal/logger"
	cMiddleware "github.com/websnap/screenshots-ms-go/internal/middleware"
	"github.com/websnap/screenshots-ms-go/internal/port"
	"github.com/websnap/screenshots-ms-go/internal/renderer"
	"github.com/websnap/screenshots-ms-go/internal/storage"
	screenshotSvc "github.com/websnap/screenshots-ms-go/internal/usecase/screenshot"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	r := initRouter(ctx)

	strg := initStorage(ctx, cfg)
	initBucket(ctx, strg, cfg.Bucket)

	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured — lookaside caching is disabled")
	}

	rdr := browser.NewChromeRenderer(cfg.ChromeDevtoolsURL)

	listDevicesSvc := screenshotSvc.NewDeviceLister()
	httpRenderer := renderer.NewHTTPRenderer(ca)
	r.Get("/devices", api.ListDevicesHandler(httpRenderer, listDevicesSvc))

	getScreenshotSvc := screenshotSvc.NewScreenshotGetter(strg, rdr, cfg.Bucket, cfg.RenderTimeout)
	r.With(cMiddleware.WithRequestKey()).
		Get("/", api.GetScreenshotHandler(getScreenshotSvc, ca))

	listenRouter(ctx, r, cfg)
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)

	r.NotFound(handler.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBucket(ctx context.Context, strg port.Storage, bucket string) {
	if err := strg.InitBucket(bucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", bucket, err)
		os.Exit(1)
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")
}
