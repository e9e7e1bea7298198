package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "APP_"
	// ConfigDirEnv names the directory holding base.yaml and the profile
	// files when WithConfigDir is not given.
	ConfigDirEnv     = "APP_CONFIG_DIR"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	overrides map[string]any
}

// WithConfigDir reads YAML files from dir instead of $APP_CONFIG_DIR or
// ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithOverrides applies values keyed by dotted path (e.g.
// "saga.journal.path") above every other layer, environment included.
// Command-line flags use it.
func WithOverrides(values map[string]any) Option {
	return func(o *loadOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]any, len(values))
		}
		for k, v := range values {
			o.overrides[k] = v
		}
	}
}

// layer is one source in the precedence chain.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load builds the Config for profile from, lowest precedence first:
//
//	built-in defaults
//	{dir}/base.yaml
//	{dir}/{profile}.yaml
//	APP_* environment variables
//	WithOverrides values
//
// Environment names map onto known keys so that underscores inside a key
// survive: APP_SERVER_READ_TIMEOUT is server.read_timeout, not
// server.read.timeout, and APP_STORE_TASKS_DATASTORE_ID is
// store.tasks_datastore_id. Unknown names fall back to one level per
// underscore.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: os.Getenv(ConfigDirEnv)}
	for _, opt := range opts {
		opt(o)
	}
	if o.configDir == "" {
		o.configDir = defaultConfigDir
	}

	k := koanf.New(".")
	for _, l := range o.layers(profile) {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func (o *loadOptions) layers(profile string) []layer {
	yamlFile := func(name string) layer {
		path := filepath.Join(o.configDir, name)
		return layer{
			name: path,
			load: func(k *koanf.Koanf) error { return k.Load(file.Provider(path), yaml.Parser()) },
		}
	}

	layers := []layer{
		{
			// Every key gets a default so the environment can address it
			// even when no file mentions it.
			name: "defaults",
			load: func(k *koanf.Koanf) error { return k.Load(confmap.Provider(defaults(), "."), nil) },
		},
		yamlFile("base.yaml"),
		yamlFile(profile + ".yaml"),
		{
			name: "environment",
			load: func(k *koanf.Koanf) error {
				return k.Load(env.Provider(".", env.Opt{
					Prefix:        envPrefix,
					TransformFunc: envKeyMapper(k.Keys()),
				}), nil)
			},
		},
	}
	if len(o.overrides) > 0 {
		layers = append(layers, layer{
			name: "overrides",
			load: func(k *koanf.Koanf) error { return k.Load(confmap.Provider(o.overrides, "."), nil) },
		})
	}
	return layers
}

// envKeyMapper returns the koanf env TransformFunc resolving APP_* names
// against keys.
func envKeyMapper(keys []string) func(key, value string) (string, any) {
	known := make(map[string]string, len(keys))
	for _, key := range keys {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if key == "config_dir" {
			return "", nil
		}
		if dotted, ok := known[key]; ok {
			return dotted, value
		}
		return strings.ReplaceAll(key, "_", "."), value
	}
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
