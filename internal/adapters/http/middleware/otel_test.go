package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/task-saga-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/telemetry"
)

// These tests replace the global TracerProvider and do not run in parallel.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return exporter
}

func spanAttrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value)
	for _, a := range s.Attributes() {
		attrs[a.Key] = a.Value
	}
	return attrs
}

func TestOpenTelemetry_SpanNamedByRoute(t *testing.T) {
	exporter := setupTracer(t)

	h := taskRouter(middleware.OpenTelemetry(nil), func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t-9", http.NoBody))

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}

	span := spans[0]
	if span.Name() != "GET /api/v1/tasks/{id}" {
		t.Errorf("span name = %q, want %q", span.Name(), "GET /api/v1/tasks/{id}")
	}
	attrs := spanAttrs(span)
	if got := attrs["http.route"].AsString(); got != "/api/v1/tasks/{id}" {
		t.Errorf("http.route = %q", got)
	}
	if got := attrs["http.status_code"].AsInt64(); got != http.StatusNotFound {
		t.Errorf("http.status_code = %d, want 404", got)
	}
	if span.Status().Code == codes.Error {
		t.Error("404 marked the span as an error")
	}
}

func TestOpenTelemetry_ErrorStatusOn5xx(t *testing.T) {
	exporter := setupTracer(t)

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/tasks", http.NoBody))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("span status = %v, want Error", spans[0].Status.Code)
	}
	if spans[0].Name != "POST unmatched" {
		t.Errorf("span name = %q, want %q", spans[0].Name, "POST unmatched")
	}
}

func TestOpenTelemetry_ContinuesInboundTrace(t *testing.T) {
	exporter := setupTracer(t)

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	h.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace id = %s, want the inbound trace", got)
	}
}

func TestOpenTelemetry_RecordsMetricsByRoute(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "test-service")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	h := taskRouter(middleware.OpenTelemetry(metrics), func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	for _, id := range []string{"a", "b", "c"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+id, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || m.Name != "http.server.request.total" {
				continue
			}
			found = true
			if len(sum.DataPoints) != 1 {
				t.Fatalf("got %d series, want one per route", len(sum.DataPoints))
			}
			dp := sum.DataPoints[0]
			if dp.Value != 3 {
				t.Errorf("count = %d, want 3", dp.Value)
			}
			if route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute); route.AsString() != "/api/v1/tasks/{id}" {
				t.Errorf("route attribute = %q", route.AsString())
			}
		}
	}
	if !found {
		t.Error("server request counter not recorded")
	}
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want 202", rec.Code)
	}
}
