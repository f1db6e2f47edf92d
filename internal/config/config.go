// Package config resolves settings from the YAML config file with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvConfigPath   = "CONFIG_PATH"
	EnvDBConnection = "DB_CONNECTION"
	EnvJWTSecret    = "JWT_SECRET"
	EnvJWTExpiry    = "JWT_EXPIRY"
)

// defaultJWTExpiry applies when the file and environment set no usable expiry.
const defaultJWTExpiry = 30 * 24 * time.Hour

// ErrMissingDatabaseDSN indicates no database DSN is present in the config file.
var ErrMissingDatabaseDSN = errors.New("missing database dsn (set `database-dsn` or `database.dsn` in config file)")

// AppConfig holds resolved application configuration values.
type AppConfig struct {
	ConfigPath string
}

// JWTConfig holds JWT secret and expiry settings.
type JWTConfig struct {
	Secret string        `yaml:"secret"`
	Expiry time.Duration `yaml:"expiry"`
}

// ServiceConfig holds timezone and ownership-mode settings.
type ServiceConfig struct {
	Timezone   string `yaml:"timezone"`
	SingleUser bool   `yaml:"single-user"`
}

// fileConfig is the full YAML schema of the config file. Each loader reads
// only its slice of it.
type fileConfig struct {
	DatabaseDSN string `yaml:"database-dsn"`
	Database    struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`
	JWT        JWTConfig `yaml:"jwt"`
	Timezone   string    `yaml:"timezone"`
	SingleUser bool      `yaml:"single-user"`
}

// readFileConfig parses the config file at configPath.
func readFileConfig(configPath string) (fileConfig, error) {
	var cfg fileConfig
	data, errRead := os.ReadFile(configPath)
	if errRead != nil {
		return cfg, fmt.Errorf("read config file: %w", errRead)
	}
	if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal != nil {
		return cfg, fmt.Errorf("parse config file: %w", errUnmarshal)
	}
	return cfg, nil
}

// LoadFromEnv loads app config from environment variables.
func LoadFromEnv() (AppConfig, error) {
	return AppConfig{ConfigPath: ResolveConfigPath(os.Getenv(EnvConfigPath))}, nil
}

// ResolveConfigPath normalizes the config path, defaulting to ./config.yaml.
func ResolveConfigPath(p string) string {
	trimmed := strings.TrimSpace(p)
	if trimmed == "" {
		trimmed = "./config.yaml"
	}
	if abs, err := filepath.Abs(trimmed); err == nil {
		return abs
	}
	return trimmed
}

// LoadDatabaseDSN resolves the database DSN. The environment wins over the
// file; the file accepts both the flat `database-dsn` key and the nested
// `database.dsn` form.
func LoadDatabaseDSN(configPath string) (string, error) {
	if dsn := strings.TrimSpace(os.Getenv(EnvDBConnection)); dsn != "" {
		return dsn, nil
	}

	cfg, errRead := readFileConfig(configPath)
	if errRead != nil {
		return "", errRead
	}
	for _, dsn := range []string{cfg.DatabaseDSN, cfg.Database.DSN} {
		if trimmed := strings.TrimSpace(dsn); trimmed != "" {
			return trimmed, nil
		}
	}
	return "", ErrMissingDatabaseDSN
}

// LoadJWTConfig resolves JWT settings. An unreadable file is not an error;
// the environment can still supply the secret, and the expiry falls back to
// its default.
func LoadJWTConfig(configPath string) (JWTConfig, error) {
	result := JWTConfig{Expiry: defaultJWTExpiry}
	if cfg, errRead := readFileConfig(configPath); errRead == nil {
		result = cfg.JWT
	}

	if secret := strings.TrimSpace(os.Getenv(EnvJWTSecret)); secret != "" {
		result.Secret = secret
	}
	if expiryRaw := strings.TrimSpace(os.Getenv(EnvJWTExpiry)); expiryRaw != "" {
		if expiry, errParse := time.ParseDuration(expiryRaw); errParse == nil && expiry > 0 {
			result.Expiry = expiry
		}
	}

	if result.Expiry <= 0 {
		result.Expiry = defaultJWTExpiry
	}
	return result, nil
}

// LoadServiceConfig loads service-level settings from the YAML config file.
// A missing file yields defaults (local timezone, multi-user mode).
func LoadServiceConfig(configPath string) (ServiceConfig, error) {
	var result ServiceConfig
	data, errRead := os.ReadFile(configPath)
	if errRead != nil {
		return result, nil
	}
	var cfg fileConfig
	if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal != nil {
		return result, fmt.Errorf("parse config file: %w", errUnmarshal)
	}
	result.Timezone = strings.TrimSpace(cfg.Timezone)
	result.SingleUser = cfg.SingleUser
	return result, nil
}

// ResolveLocation maps the configured timezone name to a time.Location.
// Empty or unknown names fall back to the system local zone.
func ResolveLocation(name string) *time.Location {
	if strings.TrimSpace(name) == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}
