package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/task-saga-service/internal/platform/logging"
)

// RedactHeaders converts headers into log attributes, replacing credential
// headers with "[REDACTED]" and joining multi-value headers with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		val := strings.Join(vals, ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			val = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(key, val))
	}
	return attrs
}

// Logging stores a logger carrying the request and correlation IDs in the
// context (see logging.FromContext) and logs request start and completion.
// Completion is logged at WARN for 5xx responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)
			ctx := logging.WithLogger(r.Context(), child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			ww := wrap(w, r)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := statusOf(ww)
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			child.LogAttrs(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
