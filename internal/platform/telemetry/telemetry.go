// Package telemetry sets up OpenTelemetry for the service and the item store
// client: a global TracerProvider (stdout or OTLP/HTTP), a MeterProvider that
// either pushes (stdout, OTLP/HTTP) or is scraped (Prometheus), and the
// instruments recorded by the HTTP layer and the saga coordinator.
//
//	tp, err := telemetry.InitTracer(ctx, "task-saga-service", telemetry.ExporterOTLP, "http://collector:4318")
//	mp, handler, err := telemetry.InitPrometheusMeter("task-saga-service")
//	metrics, err := telemetry.NewMetrics(mp, "task-saga-service")
//	metrics.SagaUnitTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrSagaUnit.String("create_task")))
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout     = "stdout"
	ExporterOTLP       = "otlp"
	ExporterPrometheus = "prometheus"
)

// meterScope is the instrumentation scope for all service instruments.
const meterScope = "github.com/jsamuelsen11/task-saga-service"

var (
	// ErrUnsupportedExporter is returned for an unknown exporter name.
	ErrUnsupportedExporter = errors.New("unsupported exporter")
	// ErrEmptyEndpoint is returned when the otlp exporter has no endpoint.
	ErrEmptyEndpoint = errors.New("otlp exporter requires an endpoint")
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod   = attribute.Key("http.method")
	AttrHTTPRoute    = attribute.Key("http.route")
	AttrHTTPStatus   = attribute.Key("http.status_code")
	AttrPeerService  = attribute.Key("peer.service")
	AttrResult       = attribute.Key("result")
	AttrSagaUnit     = attribute.Key("saga.unit")
	AttrRollbackKind = attribute.Key("rollback.kind")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// SagaUnitDuration and SagaUnitTotal are recorded once per unit of work,
	// labeled with the unit name and its result (committed or compensated).
	SagaUnitDuration metric.Float64Histogram
	SagaUnitTotal    metric.Int64Counter
	// SagaCompensationStepTotal counts individual undo attempts by kind and
	// result (ok or failed).
	SagaCompensationStepTotal metric.Int64Counter
}

// InitTracer creates and registers a global TracerProvider.
//
// The exporter parameter selects the span exporter: ExporterOTLP uses
// OTLP/HTTP with the given endpoint; ExporterStdout uses a pretty-printed
// stdout exporter for development. Any other value is rejected.
//
// The returned TracerProvider must be shut down when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider backed by a push
// exporter: ExporterOTLP or ExporterStdout. Use InitPrometheusMeter for the
// pull-based Prometheus exporter.
//
// The returned MeterProvider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// InitPrometheusMeter creates and registers a global MeterProvider whose
// instruments are collected on scrape. It uses a dedicated registry rather
// than the prometheus default so repeated calls (tests) do not collide.
// The returned handler serves the registry in the Prometheus text format.
func InitPrometheusMeter(serviceName string) (*sdkmetric.MeterProvider, http.Handler, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, nil, fmt.Errorf("creating resource: %w", err)
	}

	reg := prometheus.NewRegistry()
	exporter, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

// NewMetrics registers the service's instruments on mp. Instruments are
// scoped to the module path and tagged with serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	b := instrumentBuilder{meter: mp.Meter(meterScope,
		metric.WithInstrumentationAttributes(semconv.ServiceName(serviceName)),
	)}

	m := &Metrics{
		ServerRequestDuration: b.histogram("http.server.request.duration", "Duration of incoming HTTP requests", "s"),
		ServerRequestTotal:    b.counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: b.histogram("http.client.request.duration", "Duration of item store requests", "s"),
		ClientRequestTotal:    b.counter("http.client.request.total", "Item store requests", "{request}"),

		SagaUnitDuration:          b.histogram("saga.unit.duration", "Duration of units of work including compensation", "s"),
		SagaUnitTotal:             b.counter("saga.unit.total", "Units of work by result", "{unit}"),
		SagaCompensationStepTotal: b.counter("saga.compensation.step.total", "Undo operations attempted during compensation", "{step}"),
	}
	if b.err != nil {
		return nil, b.err
	}
	return m, nil
}

// instrumentBuilder keeps the first creation error so NewMetrics can build
// every instrument before checking.
type instrumentBuilder struct {
	meter metric.Meter
	err   error
}

func (b *instrumentBuilder) histogram(name, desc, unit string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	b.record(name, err)
	return h
}

func (b *instrumentBuilder) counter(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	b.record(name, err)
	return c
}

func (b *instrumentBuilder) record(name string, err error) {
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("creating %s: %w", name, err)
	}
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, ErrEmptyEndpoint
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, ErrEmptyEndpoint
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		return stdoutmetric.New()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

// hostPort extracts the host:port from a URL string
// (e.g., "http://otel-collector:4318" -> "otel-collector:4318").
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

// isHTTPS returns true if the endpoint URL uses the https scheme.
func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == "https"
}
