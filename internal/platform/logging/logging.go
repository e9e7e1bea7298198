// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).WarnContext(ctx, "compensation step failed",
//	    slog.String("unit", name),
//	    slog.Any("error", err),
//	)
//
// Every handler produced by New redacts credentials: attributes named after
// sensitive headers or secrets, struct fields tagged `masq:"secret"`, and
// bearer tokens or JWTs embedded in string values.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New returns a logger writing to w. level is any slog level name ("debug",
// "info", "warn", "error", optionally with an offset such as "warn+2");
// unparseable values fall back to info. format "text" selects the text
// handler, anything else JSON. Debug loggers include source locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel parses a slog level name, case-insensitively. Invalid input
// yields slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
