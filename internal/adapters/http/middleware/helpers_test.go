package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/task-saga-service/internal/platform/config"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/httpclient"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// taskRouter mounts h on GET /api/v1/tasks/{id} behind mw, the way the
// service router installs middleware.
func taskRouter(mw func(http.Handler) http.Handler, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(mw)
	r.Get("/api/v1/tasks/{id}", h)
	return r
}

func newItemStoreClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Retry:   config.RetryConfig{MaxAttempts: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
	return httpclient.New(cfg, "item-store", nil, discardLogger())
}
