package config

import (
	"errors"
	"fmt"

	"github.com/narwhalmedia/catalog/pkg/logger"
)

// CatalogConfig is the configuration of the catalog importer.
type CatalogConfig struct {
	Service ServiceConfig `koanf:"service"`
	Logger  LoggerConfig  `koanf:"logger"`
	Import  ImportConfig  `koanf:"import"`
}

// ServiceConfig contains service-specific metadata.
type ServiceConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"` // dev, staging, production
}

// LoggerConfig contains logging configuration.
type LoggerConfig struct {
	Level       string `koanf:"level"`  // debug, info, warn, error
	Format      string `koanf:"format"` // json, console
	Development bool   `koanf:"development"`
	OutputPath  string `koanf:"output_path"` // stdout, stderr, or file path
}

// ImportConfig controls a manifest import run.
type ImportConfig struct {
	ManifestPath string `koanf:"manifest_path"`
	FailFast     bool   `koanf:"fail_fast"`

	// ReferenceYear pins the year-launched upper bound; zero uses the wall clock.
	ReferenceYear int `koanf:"reference_year"`
}

// GetDefaultCatalogConfig returns default configuration values.
func GetDefaultCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		Service: ServiceConfig{
			Name:        ServiceName,
			Environment: "dev",
		},
		Logger: LoggerConfig{
			Level:      DefaultLogLevel,
			Format:     "json",
			OutputPath: "stdout",
		},
		Import: ImportConfig{
			ManifestPath: DefaultManifestPath,
		},
	}
}

// Validate validates the catalog configuration.
func (c *CatalogConfig) Validate() error {
	if c.Service.Name == "" {
		return errors.New("service name is required")
	}
	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid logger format: %q", c.Logger.Format)
	}
	if c.Import.ReferenceYear < 0 {
		return fmt.Errorf("invalid reference year: %d", c.Import.ReferenceYear)
	}
	return nil
}

// ToLoggerConfig converts config to logger package config
func (c LoggerConfig) ToLoggerConfig() *logger.Config {
	output := c.OutputPath
	if output == "" {
		output = "stdout"
	}
	return &logger.Config{
		Level:       c.Level,
		Development: c.Development,
		Encoding:    c.Format,
		OutputPaths: []string{output},
		ErrorPaths:  []string{"stderr"},
	}
}
