package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is the interface that all service configs must implement.
type Config interface {
	Validate() error
}

// Manager handles configuration loading and parsing.
type Manager struct {
	k           *koanf.Koanf
	serviceName string
	configPaths []string
}

// ManagerOption customises a Manager.
type ManagerOption func(*Manager)

// WithConfigPaths replaces the default config file search paths.
func WithConfigPaths(paths ...string) ManagerOption {
	return func(m *Manager) {
		m.configPaths = paths
	}
}

// NewManager creates a new configuration manager.
func NewManager(serviceName string, opts ...ManagerOption) *Manager {
	m := &Manager{
		k:           koanf.New("."),
		serviceName: serviceName,
		configPaths: getDefaultConfigPaths(serviceName),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LoadConfig loads configuration from all sources. Later sources win:
// struct defaults, then config files in path order, then environment.
func (m *Manager) LoadConfig(cfg Config) error {
	if err := m.k.Load(structs.Provider(cfg, "koanf"), nil); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}

	for _, path := range m.configPaths {
		if err := m.loadFromFile(path); err != nil {
			// Skip if file doesn't exist, error on parse failures
			if !os.IsNotExist(err) {
				return fmt.Errorf("failed to load config from %s: %w", path, err)
			}
		}
	}

	if err := m.loadFromEnv(); err != nil {
		return fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := m.k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// loadFromFile loads configuration from a file.
func (m *Manager) loadFromFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	parser, err := ParserFor(path)
	if err != nil {
		return err
	}
	return m.k.Load(file.Provider(path), parser)
}

// loadFromEnv loads configuration from environment variables.
// CATALOG_IMPORT__FAIL_FAST maps to import.fail_fast: a double underscore
// separates levels so single underscores survive inside key names.
func (m *Manager) loadFromEnv() error {
	prefix := EnvPrefix(m.serviceName)

	return m.k.Load(env.Provider(prefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "__", ".")
	}), nil)
}

// EnvPrefix returns the environment variable prefix for a service.
func EnvPrefix(serviceName string) string {
	return strings.ToUpper(serviceName) + "_"
}

// ParserFor picks a koanf parser from the file extension.
func ParserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}
}

// getDefaultConfigPaths returns the default config paths to check.
func getDefaultConfigPaths(serviceName string) []string {
	paths := []string{
		"config.yaml",
		"config.json",
		fmt.Sprintf("%s.yaml", serviceName),
		fmt.Sprintf("%s.json", serviceName),

		"configs/config.yaml",
		"configs/config.json",
		fmt.Sprintf("configs/%s.yaml", serviceName),
		fmt.Sprintf("configs/%s.json", serviceName),

		fmt.Sprintf("configs/%s.%s.yaml", serviceName, getEnvironment()),
		fmt.Sprintf("configs/%s.%s.json", serviceName, getEnvironment()),
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		paths = append([]string{configPath}, paths...)
	}

	return paths
}

// getEnvironment returns the current environment.
func getEnvironment() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "dev"
}
