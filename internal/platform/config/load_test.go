package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/task-saga-service/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want debug/text", cfg.Log)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Store.Driver != config.DriverMemory {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, config.DriverMemory)
	}

	// Inherited from base.yaml.
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 8080 {
		t.Errorf("Server = %s:%d, want 0.0.0.0:8080 from base", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Client.Retry.MaxAttempts != 3 || cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client = %+v, want base retry and breaker settings", cfg.Client)
	}
	if cfg.Store.TasksDatastoreID != "tasks" {
		t.Errorf("Store.TasksDatastoreID = %q, want \"tasks\"", cfg.Store.TasksDatastoreID)
	}
	if cfg.Saga.CompensationTimeout != 30*time.Second {
		t.Errorf("Saga.CompensationTimeout = %v, want 30s", cfg.Saga.CompensationTimeout)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want info/json", cfg.Log)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.Exporter != "otlp" || cfg.Telemetry.Endpoint == "" {
		t.Errorf("Telemetry = %+v, want otlp with an endpoint", cfg.Telemetry)
	}
	if got := cfg.Telemetry.MetricsExporter(); got != "prometheus" {
		t.Errorf("Telemetry.MetricsExporter() = %q, want \"prometheus\"", got)
	}
	if !cfg.Saga.Journal.Enabled {
		t.Error("Saga.Journal.Enabled = false, want true for prod")
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := writeProfile(t, "log:\n  level: warn\n", "store:\n  driver: memory\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\"", cfg.Log.Level)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Store.FetchWorkers != 8 {
		t.Errorf("Store.FetchWorkers = %d, want 8 (default)", cfg.Store.FetchWorkers)
	}
	if cfg.Store.TaskDetailsDatastoreID != "task_details" {
		t.Errorf("Store.TaskDetailsDatastoreID = %q, want \"task_details\" (default)",
			cfg.Store.TaskDetailsDatastoreID)
	}
}

func TestLoad_ProfileOverridesBase(t *testing.T) {
	dir := writeProfile(t,
		"log:\n  level: warn\nstore:\n  driver: memory\n",
		"log:\n  level: error\n",
	)

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want profile value \"error\"", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		env   string
		value string
		check func(*config.Config) bool
	}{
		{env: "APP_SERVER_PORT", value: "9090", check: func(c *config.Config) bool { return c.Server.Port == 9090 }},
		{env: "APP_SERVER_READ_TIMEOUT", value: "15s", check: func(c *config.Config) bool { return c.Server.ReadTimeout == 15*time.Second }},
		{env: "APP_CLIENT_RETRY_MAX_ATTEMPTS", value: "7", check: func(c *config.Config) bool { return c.Client.Retry.MaxAttempts == 7 }},
		{env: "APP_STORE_TASKS_DATASTORE_ID", value: "ds-42", check: func(c *config.Config) bool { return c.Store.TasksDatastoreID == "ds-42" }},
		{env: "APP_SAGA_JOURNAL_PATH", value: "/var/lib/tasks/j.db", check: func(c *config.Config) bool { return c.Saga.Journal.Path == "/var/lib/tasks/j.db" }},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Chdir("../../..")
			t.Setenv(tt.env, tt.value)

			cfg, err := config.Load("local")
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("%s=%s was not applied", tt.env, tt.value)
			}
		})
	}
}

func TestLoad_OverridesBeatEnvironment(t *testing.T) {
	dir := writeProfile(t, "store:\n  driver: memory\n", "log:\n  level: info\n")
	t.Setenv("APP_SAGA_JOURNAL_PATH", "from-env.db")

	cfg, err := config.Load("test",
		config.WithConfigDir(dir),
		config.WithOverrides(map[string]any{"saga.journal.path": "from-flag.db"}),
	)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Saga.Journal.Path != "from-flag.db" {
		t.Errorf("Saga.Journal.Path = %q, want \"from-flag.db\"", cfg.Saga.Journal.Path)
	}
}

func TestLoad_ConfigDirFromEnvironment(t *testing.T) {
	dir := writeProfile(t, "store:\n  driver: memory\n", "server:\n  port: 7070\n")
	t.Setenv(config.ConfigDirEnv, dir)

	cfg, err := config.Load("test")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070 from %s", cfg.Server.Port, dir)
	}
}

func TestLoad_InvalidProfileName(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "a/b", `a\b`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	if _, err := config.Load("nonexistent"); err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_InvalidResultIsRejected(t *testing.T) {
	dir := writeProfile(t, "store:\n  driver: memory\n", "server:\n  port: 70000\n")

	if _, err := config.Load("test", config.WithConfigDir(dir)); err == nil {
		t.Fatal("Load with port 70000 returned nil error, want validation error")
	}
}

// writeProfile writes base.yaml and test.yaml into a fresh directory.
func writeProfile(t *testing.T, base, profile string) string {
	t.Helper()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), base)
	writeFile(t, filepath.Join(dir, "test.yaml"), profile)
	return dir
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_Store(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "unknown driver", mutate: func(c *config.Config) { c.Store.Driver = "postgres" }},
		{name: "empty tasks datastore", mutate: func(c *config.Config) { c.Store.TasksDatastoreID = "" }},
		{name: "same datastores", mutate: func(c *config.Config) { c.Store.TaskDetailsDatastoreID = "tasks" }},
		{name: "zero page size", mutate: func(c *config.Config) { c.Store.PageSize = 0 }},
		{name: "zero fetch workers", mutate: func(c *config.Config) { c.Store.FetchWorkers = 0 }},
		{name: "journal without path", mutate: func(c *config.Config) {
			c.Saga.Journal.Enabled = true
			c.Saga.Journal.Path = ""
		}},
		{name: "negative compensation timeout", mutate: func(c *config.Config) { c.Saga.CompensationTimeout = -time.Second }},
		{name: "rate limit without burst", mutate: func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_MemoryDriverSkipsClient(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Store.Driver = config.DriverMemory
	cfg.Client = config.ClientConfig{}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error with memory driver: %v", err)
	}
}

func TestValidate_PrometheusMetricExporter(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry = config.TelemetryConfig{
		Enabled:        true,
		Exporter:       "stdout",
		MetricExporter: "prometheus",
		ServiceName:    "svc",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}

	cfg.Telemetry.Exporter = "prometheus"
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for prometheus trace exporter")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Store: config.StoreConfig{
			Driver:                 config.DriverHTTP,
			TasksDatastoreID:       "tasks",
			TaskDetailsDatastoreID: "task_details",
			PageSize:               100,
			FetchWorkers:           8,
		},
		Saga: config.SagaConfig{
			CompensationTimeout: 30 * time.Second,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
