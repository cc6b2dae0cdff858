package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, SourceSeed, cfg.Catalog.Source)
	assert.Equal(t, ModeCached, cfg.Catalog.Mode)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "catalog_updated", cfg.Events.Channel)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  env: production
catalog:
  source: csv
  universities_path: s3://advisor/universities.csv
  refresh_interval: 5m
`)
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("CATALOG_MODE", "live")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, SourceCSV, cfg.Catalog.Source)
	assert.Equal(t, ModeLive, cfg.Catalog.Mode)
	assert.Equal(t, "s3://advisor/universities.csv", cfg.Catalog.UniversitiesPath)
	assert.Equal(t, 5*time.Minute, cfg.Catalog.RefreshInterval)
	assert.Equal(t, "0.0.0.0:9100", cfg.Address())
}

func TestValidateRejectsInconsistentSections(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown source", "catalog:\n  source: excel\n"},
		{"database without url", "catalog:\n  source: database\n"},
		{"unknown mode", "catalog:\n  mode: eager\n"},
		{"amqp without url", "events:\n  listener: amqp\n"},
		{"postgres listener on mysql", "database:\n  driver: mysql\n  url: user@/db\nevents:\n  listener: postgres\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(viper.New(), writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
