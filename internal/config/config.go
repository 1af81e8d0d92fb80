// Package config loads blaezi's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/blaezi/blaezi/internal/history"
	"github.com/blaezi/blaezi/internal/pillar"
)

// Storage backends for the pressure history.
const (
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config is the full blaezi configuration.
type Config struct {
	Storage StorageConfig       `yaml:"storage"`
	History HistoryConfig       `yaml:"history"`
	Health  pillar.HealthPolicy `yaml:"health"`
	Log     LogConfig           `yaml:"log"`
	Metrics MetricsConfig       `yaml:"metrics"`
}

// StorageConfig selects where pressure history is kept. Records always
// live in the SQLite database.
type StorageConfig struct {
	Backend       string `yaml:"backend"` // "sqlite", "redis", "postgres", "memory"
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	RedisPrefix   string `yaml:"redis_prefix"`
	PostgresDSN   string `yaml:"postgres_dsn"`
}

// HistoryConfig configures snapshot retention.
type HistoryConfig struct {
	Retention int `yaml:"retention"` // snapshots kept; 0 keeps all
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Mode  string `yaml:"mode"` // "dev" or "prod"
	Level string `yaml:"level"`
}

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	TextfilePath string `yaml:"textfile_path"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:     BackendSQLite,
			RedisAddr:   "localhost:6379",
			RedisPrefix: "blaezi:",
		},
		History: HistoryConfig{Retention: history.DefaultRetention},
		Health:  pillar.DefaultHealthPolicy(),
		Log:     LogConfig{Mode: "prod", Level: "warn"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/blaezi/config.yaml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "blaezi", "config.yaml"), nil
}

// Load reads the config at path over the defaults, applies environment
// overrides and validates the result. When path is empty the default path
// is used and a missing file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// Expand environment variables (e.g. ${REDIS_PASSWORD}) before parsing YAML
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Storage.Backend = getEnv("BLAEZI_STORAGE_BACKEND", c.Storage.Backend)
	c.Storage.RedisAddr = getEnv("BLAEZI_REDIS_ADDR", c.Storage.RedisAddr)
	c.Storage.RedisPassword = getEnv("BLAEZI_REDIS_PASSWORD", c.Storage.RedisPassword)
	c.Storage.RedisDB = getEnvAsInt("BLAEZI_REDIS_DB", c.Storage.RedisDB)
	c.Storage.PostgresDSN = getEnv("BLAEZI_POSTGRES_DSN", c.Storage.PostgresDSN)
	c.Log.Mode = getEnv("BLAEZI_LOG_MODE", c.Log.Mode)
	c.Log.Level = getEnv("BLAEZI_LOG_LEVEL", c.Log.Level)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("storage.redis_addr is required for the redis backend")
		}
	case BackendPostgres:
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("storage.postgres_dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.History.Retention < 0 {
		return fmt.Errorf("history.retention must not be negative: %d", c.History.Retention)
	}

	h := c.Health
	if h.AtRiskAfterDays < 0 || h.DelayedAfterDays < h.AtRiskAfterDays {
		return fmt.Errorf("health thresholds must satisfy 0 <= at_risk_after_days (%d) <= delayed_after_days (%d)",
			h.AtRiskAfterDays, h.DelayedAfterDays)
	}

	switch c.Log.Mode {
	case "dev", "prod":
	default:
		return fmt.Errorf("log.mode must be dev or prod, got %q", c.Log.Mode)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
