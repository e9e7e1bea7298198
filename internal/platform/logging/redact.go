package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SecretTag marks struct fields that must never be logged, e.g. the item
// store token in config.ClientConfig: `masq:"secret"`.
const SecretTag = "secret"

// SensitiveHeaders lists header names (lowercase) that carry credentials.
// The HTTP logging middleware redacts them in header dumps and the handler
// redacts attributes of the same name.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

var (
	// "Bearer <token>" anywhere in a string value.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// header.payload.signature with at least 10 characters per segment, so
	// version strings and dotted item refs are left alone.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	// api_key=..., apikey: ...
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// newRedactAttr builds the masq ReplaceAttr installed by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithTag(SecretTag),
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("Token"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	}
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	return masq.New(opts...)
}
