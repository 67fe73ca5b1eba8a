package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/pkg/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadServiceConfig_Defaults(t *testing.T) {
	cfg := config.GetDefaultCatalogConfig()
	err := config.LoadServiceConfig("catalogtest", cfg, config.WithConfigPaths())
	require.NoError(t, err)

	assert.Equal(t, config.ServiceName, cfg.Service.Name)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, config.DefaultManifestPath, cfg.Import.ManifestPath)
	assert.False(t, cfg.Import.FailFast)
	assert.Zero(t, cfg.Import.ReferenceYear)
}

func TestLoadServiceConfig_FileThenEnv(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
service:
  version: "1.2.3"
logger:
  level: debug
  format: console
import:
  manifest_path: seeds/videos.yaml
  reference_year: 2020
`)
	t.Setenv("CATALOGTEST_IMPORT__FAIL_FAST", "true")
	t.Setenv("CATALOGTEST_IMPORT__REFERENCE_YEAR", "2024")

	cfg := config.GetDefaultCatalogConfig()
	err := config.LoadServiceConfig("catalogtest", cfg, config.WithConfigPaths(path))
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", config.GetServiceVersion(&cfg.Service))
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "seeds/videos.yaml", cfg.Import.ManifestPath)
	assert.True(t, cfg.Import.FailFast)
	assert.Equal(t, 2024, cfg.Import.ReferenceYear)
}

func TestLoadServiceConfig_JSON(t *testing.T) {
	path := writeFile(t, "catalog.json", `{"import": {"fail_fast": true}}`)

	cfg := config.GetDefaultCatalogConfig()
	require.NoError(t, config.LoadServiceConfig("catalogtest", cfg, config.WithConfigPaths(path)))
	assert.True(t, cfg.Import.FailFast)
}

func TestLoadServiceConfig_MissingFileIsSkipped(t *testing.T) {
	cfg := config.GetDefaultCatalogConfig()
	err := config.LoadServiceConfig("catalogtest", cfg,
		config.WithConfigPaths(filepath.Join(t.TempDir(), "absent.yaml")))
	require.NoError(t, err)
}

func TestLoadServiceConfig_Invalid(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		path := writeFile(t, "catalog.toml", "x = 1")
		err := config.LoadServiceConfig("catalogtest", config.GetDefaultCatalogConfig(), config.WithConfigPaths(path))
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		t.Setenv("CATALOGTEST_LOGGER__FORMAT", "xml")
		err := config.LoadServiceConfig("catalogtest", config.GetDefaultCatalogConfig(), config.WithConfigPaths())
		assert.ErrorContains(t, err, "invalid logger format")
	})

	t.Run("negative reference year", func(t *testing.T) {
		cfg := config.GetDefaultCatalogConfig()
		cfg.Import.ReferenceYear = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("must load panics", func(t *testing.T) {
		cfg := config.GetDefaultCatalogConfig()
		cfg.Service.Name = ""
		assert.Panics(t, func() {
			config.MustLoadServiceConfig("catalogtest", cfg, config.WithConfigPaths())
		})
	})
}

func TestLoggerConfig_ToLoggerConfig(t *testing.T) {
	cfg := config.LoggerConfig{Level: "warn", Format: "console"}
	lc := cfg.ToLoggerConfig()

	assert.Equal(t, "warn", lc.Level)
	assert.Equal(t, "console", lc.Encoding)
	assert.Equal(t, []string{"stdout"}, lc.OutputPaths)
}

func TestIsProduction(t *testing.T) {
	assert.True(t, config.IsProduction(&config.ServiceConfig{Environment: "prod"}))
	assert.False(t, config.IsProduction(&config.ServiceConfig{Environment: "dev"}))
}
