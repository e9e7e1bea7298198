// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The router installs them in this order, first outermost:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Status codes are captured with chi's WrapResponseWriter. Route patterns
// ("/api/v1/tasks/{id}") rather than raw paths label spans, metrics, and
// completion logs so task ids do not inflate their cardinality.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// unmatchedRoute labels requests that matched no route.
const unmatchedRoute = "unmatched"

// wrap returns a writer that records the status and body size.
func wrap(w http.ResponseWriter, r *http.Request) chimw.WrapResponseWriter {
	return chimw.NewWrapResponseWriter(w, r.ProtoMajor)
}

// statusOf returns the status sent through ww. A handler that wrote nothing
// gets the implicit 200.
func statusOf(ww chimw.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}

// routePattern returns the chi pattern the request matched. It must be called
// after the router has served the request.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return unmatchedRoute
}
