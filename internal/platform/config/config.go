// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Store drivers.
const (
	DriverHTTP   = "http"
	DriverMemory = "memory"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Store     StoreConfig     `koanf:"store"`
	Saga      SagaConfig      `koanf:"saga"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the remote item store HTTP client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Token          string               `koanf:"token" masq:"secret"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound token bucket settings. A zero
// RequestsPerSecond disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// StoreConfig selects the item store backend and the datastores tasks and
// their details live in.
type StoreConfig struct {
	Driver                 string `koanf:"driver"`
	TasksDatastoreID       string `koanf:"tasks_datastore_id"`
	TaskDetailsDatastoreID string `koanf:"task_details_datastore_id"`
	PageSize               int    `koanf:"page_size"`
	FetchWorkers           int    `koanf:"fetch_workers"`
}

// SagaConfig holds compensation settings.
type SagaConfig struct {
	CompensationTimeout time.Duration `koanf:"compensation_timeout"`
	Journal             JournalConfig `koanf:"journal"`
}

// JournalConfig controls the durable record of failed compensations.
type JournalConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// TelemetryConfig holds OpenTelemetry settings. Exporter selects the trace
// exporter; MetricExporter selects the metric exporter and falls back to
// Exporter when empty.
type TelemetryConfig struct {
	Enabled        bool   `koanf:"enabled"`
	Exporter       string `koanf:"exporter"`
	MetricExporter string `koanf:"metric_exporter"`
	Endpoint       string `koanf:"endpoint"`
	ServiceName    string `koanf:"service_name"`
}

// MetricsExporter returns the effective metric exporter.
func (t TelemetryConfig) MetricsExporter() string {
	if t.MetricExporter != "" {
		return t.MetricExporter
	}
	return t.Exporter
}
