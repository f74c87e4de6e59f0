package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/maxviazov/product-pagination-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestConfigLoad_FromYAMLAndEnv(t *testing.T) {
	yaml := `
app:
  name: product-pagination-service
  env: test
  port: 18080
  shutdown_timeout: 3s

logger:
  level: info
  format: json

catalog:
  size: 25
  base_price: 5
  price_step: 0.5

pagination:
  default_limit: 5
  max_limit: 20
`
	path := writeTempConfig(t, yaml)
	t.Setenv("APP_APP_HOST", "0.0.0.0")
	t.Setenv("APP_CATALOG_SIZE", "40")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18080, cfg.App.Port)
	assert.Equal(t, "0.0.0.0:18080", cfg.App.Address())
	assert.Equal(t, 3*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.App.ReadTimeout, "default applies when yaml omits it")
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 40, cfg.Catalog.Size, "env overrides yaml")
	assert.Equal(t, 0.5, cfg.Catalog.PriceStep)
	assert.Equal(t, 5, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 20, cfg.Pagination.MaxLimit)
}

func TestConfigLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "product-pagination-service", cfg.App.Name)
	assert.Equal(t, 8000, cfg.App.Port)
	assert.Equal(t, 100, cfg.Catalog.Size)
	assert.Equal(t, 10.0, cfg.Catalog.BasePrice)
	assert.Equal(t, 1.1, cfg.Catalog.PriceStep)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 50, cfg.Pagination.MaxLimit)
}

func TestConfigLoad_MissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfigLoad_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad port", "app:\n  port: 70000\n"},
		{"bad env", "app:\n  env: qa\n"},
		{"negative catalog", "catalog:\n  size: -1\n"},
		{"default above max", "pagination:\n  default_limit: 60\n  max_limit: 50\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeTempConfig(t, tc.yaml))
			assert.Error(t, err)
		})
	}
}
