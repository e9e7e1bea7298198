package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.clientValidate(),
		c.Saga.validate(),
		c.Telemetry.validate(),
	)
}

// clientValidate checks the item store client only when it will be used.
func (c *Config) clientValidate() error {
	if c.Store.Driver != DriverHTTP {
		return nil
	}
	return c.Client.validate()
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must be >= 0, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	switch s.Driver {
	case DriverHTTP, DriverMemory:
		// Valid drivers.
	default:
		errs = append(errs, fmt.Errorf("store.driver must be one of: http, memory; got %q", s.Driver))
	}
	if s.TasksDatastoreID == "" {
		errs = append(errs, errors.New("store.tasks_datastore_id must not be empty"))
	}
	if s.TaskDetailsDatastoreID == "" {
		errs = append(errs, errors.New("store.task_details_datastore_id must not be empty"))
	}
	if s.TasksDatastoreID != "" && s.TasksDatastoreID == s.TaskDetailsDatastoreID {
		errs = append(errs, errors.New("store.tasks_datastore_id and store.task_details_datastore_id must differ"))
	}
	if s.PageSize < 1 {
		errs = append(errs, fmt.Errorf("store.page_size must be >= 1, got %d", s.PageSize))
	}
	if s.FetchWorkers < 1 {
		errs = append(errs, fmt.Errorf("store.fetch_workers must be >= 1, got %d", s.FetchWorkers))
	}

	return errors.Join(errs...)
}

func (s *SagaConfig) validate() error {
	var errs []error

	if s.CompensationTimeout < 0 {
		errs = append(errs, errors.New("saga.compensation_timeout must not be negative"))
	}
	if s.Journal.Enabled && s.Journal.Path == "" {
		errs = append(errs, errors.New("saga.journal.path must not be empty when the journal is enabled"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	switch t.MetricsExporter() {
	case "stdout", "otlp", "prometheus":
		// Valid metric exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.metric_exporter must be one of: stdout, otlp, prometheus; got %q",
			t.MetricExporter))
	}

	if (t.Exporter == "otlp" || t.MetricsExporter() == "otlp") && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}
