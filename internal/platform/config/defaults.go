package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultStorePageSize     = 100
	defaultStoreFetchWorkers = 8
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.token":                           "",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"store.driver":                    DriverHTTP,
		"store.tasks_datastore_id":        "tasks",
		"store.task_details_datastore_id": "task_details",
		"store.page_size":                 defaultStorePageSize,
		"store.fetch_workers":             defaultStoreFetchWorkers,

		"saga.compensation_timeout": "30s",
		"saga.journal.enabled":      false,
		"saga.journal.path":         "compensations.db",

		"telemetry.enabled":         false,
		"telemetry.exporter":        "stdout",
		"telemetry.metric_exporter": "",
		"telemetry.endpoint":        "",
		"telemetry.service_name":    "task-saga-service",
	}
}
