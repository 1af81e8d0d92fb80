package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BLAEZI_STORAGE_BACKEND", "BLAEZI_REDIS_ADDR", "BLAEZI_REDIS_PASSWORD",
		"BLAEZI_REDIS_DB", "BLAEZI_POSTGRES_DSN", "BLAEZI_LOG_MODE", "BLAEZI_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_REDIS_PASSWORD", "s3cret")

	path := writeConfig(t, `
storage:
  backend: redis
  redis_addr: cache:6379
  redis_password: ${TEST_REDIS_PASSWORD}
history:
  retention: 30
health:
  at_risk_after_days: 3
  delayed_after_days: 10
log:
  mode: dev
metrics:
  textfile_path: /tmp/blaezi.prom
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, "s3cret", cfg.Storage.RedisPassword)
	assert.Equal(t, "blaezi:", cfg.Storage.RedisPrefix, "unset fields keep defaults")
	assert.Equal(t, 30, cfg.History.Retention)
	assert.Equal(t, 3, cfg.Health.AtRiskAfterDays)
	assert.Equal(t, 10, cfg.Health.DelayedAfterDays)
	assert.Equal(t, "dev", cfg.Log.Mode)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/blaezi.prom", cfg.Metrics.TextfilePath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BLAEZI_STORAGE_BACKEND", "postgres")
	t.Setenv("BLAEZI_POSTGRES_DSN", "postgres://localhost/blaezi")
	t.Setenv("BLAEZI_LOG_MODE", "dev")

	path := writeConfig(t, "storage:\n  backend: memory\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, "postgres://localhost/blaezi", cfg.Storage.PostgresDSN)
	assert.Equal(t, "dev", cfg.Log.Mode)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "storage: [unterminated"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Storage.Backend = "mongo" }},
		{"redis without addr", func(c *Config) {
			c.Storage.Backend = BackendRedis
			c.Storage.RedisAddr = ""
		}},
		{"postgres without dsn", func(c *Config) { c.Storage.Backend = BackendPostgres }},
		{"negative retention", func(c *Config) { c.History.Retention = -1 }},
		{"inverted health thresholds", func(c *Config) {
			c.Health.AtRiskAfterDays = 20
			c.Health.DelayedAfterDays = 10
		}},
		{"bad log mode", func(c *Config) { c.Log.Mode = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
