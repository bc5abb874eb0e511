package screenshot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/websnap/screenshots-ms-go/internal/cachekey"
	"github.com/websnap/screenshots-ms-go/internal/mock"
	"github.com/websnap/screenshots-ms-go/internal/model"
	"github.com/websnap/screenshots-ms-go/internal/port"
)

const testBucket = "screenshots"

func newService(strg *mock.Storage, rdr *mock.Renderer) port.ScreenshotGetter {
	return NewScreenshotGetter(strg, rdr, testBucket, 5*time.Second)
}

func validInput() port.GetScreenshotInput {
	return port.GetScreenshotInput{URL: "https://example.com", DeviceID: "desktop", FullPage: false}
}

func TestGetScreenshot_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"relative", "/foo/bar"},
		{"no scheme", "example.com"},
		{"bad scheme", "ftp://example.com"},
		{"scheme only", "https://"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			strg := &mock.Storage{}
			rdr := &mock.Renderer{}
			svc := newService(strg, rdr)

			in := validInput()
			in.URL = tc.url
			_, err := svc.GetScreenshot(context.Background(), in)

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != "url" {
				t.Errorf("offending field = %q; want url", vErr.Field)
			}
			if rdr.RenderCalled || strg.GetCalled || strg.SaveCalled {
				t.Error("no storage or render work may happen on invalid input")
			}
		})
	}
}

func TestGetScreenshot_UnknownDevice(t *testing.T) {
	strg := &mock.Storage{}
	rdr := &mock.Renderer{}
	svc := newService(strg, rdr)

	in := validInput()
	in.DeviceID = "etch_a_sketch"
	_, err := svc.GetScreenshot(context.Background(), in)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "deviceType" {
		t.Errorf("offending field = %q; want deviceType", vErr.Field)
	}
	if rdr.RenderCalled || strg.GetCalled {
		t.Error("no storage or render work may happen on unknown device")
	}
}

func TestGetScreenshot_CacheHit(t *testing.T) {
	stored := []byte("stored png bytes")
	strg := &mock.Storage{GetOut: bytes.NewReader(stored)}
	rdr := &mock.Renderer{}
	svc := newService(strg, rdr)

	out, err := svc.GetScreenshot(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.FromCache {
		t.Error("expected FromCache = true")
	}
	if !bytes.Equal(out.PNG, stored) {
		t.Errorf("PNG = %q; want stored bytes", out.PNG)
	}
	if rdr.RenderCalled {
		t.Error("renderer must not run on a cache hit")
	}
	if strg.SaveCalled {
		t.Error("nothing may be written on a cache hit")
	}

	wantKey := cachekey.Derive("https://example.com", model.Viewport{Width: 1920, Height: 1080, Scale: 1}, false)
	if strg.ObjectKey != wantKey {
		t.Errorf("looked up key %q; want %q", strg.ObjectKey, wantKey)
	}
}

func TestGetScreenshot_MissRendersAndStores(t *testing.T) {
	rendered := []byte("fresh png bytes")
	strg := &mock.Storage{GetErr: ErrObjectNotFound, ExistsOut: true}
	rdr := &mock.Renderer{RenderOut: rendered}
	svc := newService(strg, rdr)

	out, err := svc.GetScreenshot(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.FromCache {
		t.Error("expected FromCache = false")
	}
	if !bytes.Equal(out.PNG, rendered) {
		t.Errorf("PNG = %q; want rendered bytes", out.PNG)
	}
	if !bytes.Equal(strg.SavedBytes, rendered) {
		t.Errorf("stored %q; want rendered bytes", strg.SavedBytes)
	}
	if strg.SavedOpts["Content-Type"] != "image/png" {
		t.Errorf("Content-Type = %q; want image/png", strg.SavedOpts["Content-Type"])
	}
	if !strg.FileExistsCalled {
		t.Error("write must be confirmed with a read-back")
	}
	if rdr.GotViewport != (model.Viewport{Width: 1920, Height: 1080, Scale: 1}) {
		t.Errorf("renderer viewport = %+v", rdr.GotViewport)
	}
}

func TestGetScreenshot_RenderFailure(t *testing.T) {
	strg := &mock.Storage{GetErr: ErrObjectNotFound}
	rdr := &mock.Renderer{RenderErr: errors.New("net::ERR_NAME_NOT_RESOLVED")}
	svc := newService(strg, rdr)

	_, err := svc.GetScreenshot(context.Background(), validInput())
	if !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("expected ErrRenderFailed, got %v", err)
	}
	if strg.SaveCalled {
		t.Error("a failed render must never be written to storage")
	}
}

func TestGetScreenshot_SaveFailure(t *testing.T) {
	strg := &mock.Storage{GetErr: ErrObjectNotFound, SaveErr: errors.New("disk full")}
	rdr := &mock.Renderer{RenderOut: []byte("png")}
	svc := newService(strg, rdr)

	_, err := svc.GetScreenshot(context.Background(), validInput())
	if err == nil || !errors.Is(err, strg.SaveErr) {
		t.Fatalf("expected save error to propagate, got %v", err)
	}
}

func TestGetScreenshot_StorageInconsistency(t *testing.T) {
	strg := &mock.Storage{GetErr: ErrObjectNotFound, ExistsOut: false}
	rdr := &mock.Renderer{RenderOut: []byte("png")}
	svc := newService(strg, rdr)

	_, err := svc.GetScreenshot(context.Background(), validInput())
	if !errors.Is(err, ErrStorageInconsistent) {
		t.Fatalf("expected ErrStorageInconsistent, got %v", err)
	}
}

func TestGetScreenshot_StorageReadError(t *testing.T) {
	strg := &mock.Storage{GetErr: ErrInternal}
	rdr := &mock.Renderer{}
	svc := newService(strg, rdr)

	_, err := svc.GetScreenshot(context.Background(), validInput())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
	if rdr.RenderCalled {
		t.Error("renderer must not run when the lookup itself failed")
	}
}

func TestGetScreenshot_DeviceVariantsGetDistinctKeys(t *testing.T) {
	keys := make(map[string]bool)
	for _, id := range []string{"desktop", "ipad_pro_landscape"} {
		strg := &mock.Storage{GetOut: bytes.NewReader([]byte("png"))}
		svc := newService(strg, &mock.Renderer{})

		in := validInput()
		in.DeviceID = id
		if _, err := svc.GetScreenshot(context.Background(), in); err != nil {
			t.Fatalf("unexpected error for %s: %v", id, err)
		}
		keys[strg.ObjectKey] = true
	}
	if len(keys) != 2 {
		t.Errorf("expected distinct keys per device variant, got %d", len(keys))
	}
}

// blockingRenderer holds every Render call until release is closed, so
// concurrent requests are guaranteed to overlap.
type blockingRenderer struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
	out     []byte
}

func (r *blockingRenderer) Render(ctx context.Context, url string, vp model.Viewport, fullPage bool) ([]byte, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	r.started <- struct{}{}
	select {
	case <-r.release:
		return r.out, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// missStorage always misses on read and accepts writes; safe for
// concurrent use unlike the shared mock.
type missStorage struct {
	mu    sync.Mutex
	saves int
}

func (s *missStorage) InitBucket(bucket string) error { return nil }
func (s *missStorage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	return true, nil
}
func (s *missStorage) GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error) {
	return nil, ErrObjectNotFound
}
func (s *missStorage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	s.mu.Lock()
	s.saves++
	s.mu.Unlock()
	return nil
}

func TestGetScreenshot_ConcurrentFirstRequestsShareOneRender(t *testing.T) {
	strg := &missStorage{}
	rdr := &blockingRenderer{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		out:     []byte("png"),
	}
	svc := NewScreenshotGetter(strg, rdr, testBucket, 5*time.Second)

	const n = 4
	var wg sync.WaitGroup
	outs := make([]*port.GetScreenshotOutput, n)
	errs := make([]error, n)
	ready := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-ready
			outs[i], errs[i] = svc.GetScreenshot(context.Background(), validInput())
		}(i)
	}
	close(ready)

	// wait for the first render to start, give the rest time to queue on
	// the flight group, then let the render finish
	<-rdr.started
	time.Sleep(50 * time.Millisecond)
	close(rdr.release)
	wg.Wait()

	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("request %d failed: %v", i, errs[i])
		}
		if !bytes.Equal(outs[i].PNG, rdr.out) {
			t.Errorf("request %d got %q", i, outs[i].PNG)
		}
	}
	rdr.mu.Lock()
	defer rdr.mu.Unlock()
	if rdr.calls != 1 {
		t.Errorf("renderer ran %d times; want 1", rdr.calls)
	}
	strg.mu.Lock()
	defer strg.mu.Unlock()
	if strg.saves != 1 {
		t.Errorf("storage wrote %d times; want 1", strg.saves)
	}
}

func TestGetScreenshot_WinnerDisconnectDoesNotFailWaiters(t *testing.T) {
	strg := &missStorage{}
	rdr := &blockingRenderer{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		out:     []byte("png"),
	}
	svc := NewScreenshotGetter(strg, rdr, testBucket, 5*time.Second)

	winnerCtx, disconnect := context.WithCancel(context.Background())
	winnerErr := make(chan error, 1)
	go func() {
		_, err := svc.GetScreenshot(winnerCtx, validInput())
		winnerErr <- err
	}()
	<-rdr.started

	waiterOut := make(chan *port.GetScreenshotOutput, 1)
	waiterErr := make(chan error, 1)
	go func() {
		out, err := svc.GetScreenshot(context.Background(), validInput())
		waiterOut <- out
		waiterErr <- err
	}()
	// give the waiter time to join the in-flight render, then drop the
	// request that started it
	time.Sleep(50 * time.Millisecond)
	disconnect()
	time.Sleep(50 * time.Millisecond)
	close(rdr.release)

	<-winnerErr
	if err := <-waiterErr; err != nil {
		t.Fatalf("waiter failed after winner disconnect: %v", err)
	}
	if out := <-waiterOut; !bytes.Equal(out.PNG, rdr.out) {
		t.Errorf("waiter got %q; want rendered bytes", out.PNG)
	}
	rdr.mu.Lock()
	defer rdr.mu.Unlock()
	if rdr.calls != 1 {
		t.Errorf("renderer ran %d times; want 1", rdr.calls)
	}
}
