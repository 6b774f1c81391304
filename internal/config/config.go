// Package config resolves runtime settings from defaults, an optional YAML
// file and PEPTICA_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix          = "PEPTICA_"
	minSecretKeyLength = 32
)

var (
	ErrMissingSecretKey  = errors.New("secret_key is required")
	ErrInsecureSecretKey = errors.New("secret_key uses an insecure placeholder")
	ErrShortSecretKey    = errors.New("secret_key is too short")
)

var insecureSecretKeys = map[string]bool{
	"change_me_in_production":               true,
	"replace_with_strong_random_secret_key": true,
	"changeme":                              true,
	"secret":                                true,
}

type Config struct {
	Port            int           `yaml:"port" koanf:"port"`
	DBPath          string        `yaml:"db_path" koanf:"db_path"`
	SecretKey       string        `yaml:"secret_key" koanf:"secret_key"`
	DefaultLanguage string        `yaml:"default_language" koanf:"default_language"`
	CookieSecure    bool          `yaml:"cookie_secure" koanf:"cookie_secure"`
	Timezone        string        `yaml:"timezone" koanf:"timezone"`
	AdminTokenTTL   time.Duration `yaml:"admin_token_ttl" koanf:"admin_token_ttl"`
	LogLevel        string        `yaml:"log_level" koanf:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Port:            8080,
		DBPath:          "data/peptica.db",
		DefaultLanguage: "en",
		Timezone:        "UTC",
		AdminTokenTTL:   24 * time.Hour,
		LogLevel:        "info",
	}
}

// Load overlays the YAML file at path (skipped when path is empty or the
// file does not exist) and then PEPTICA_* variables onto the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// PEPTICA_DB_PATH -> db_path
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.SecretKey = strings.TrimSpace(cfg.SecretKey)
	return cfg, nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks everything except the secret key, which only the
// commands that sign or hash need. See ValidateSecretKey.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db_path is required")
	}
	if strings.TrimSpace(c.DefaultLanguage) == "" {
		return fmt.Errorf("default_language is required")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.AdminTokenTTL <= 0 {
		return fmt.Errorf("admin_token_ttl must be positive")
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

func (c *Config) ValidateSecretKey() error {
	secret := strings.TrimSpace(c.SecretKey)
	if secret == "" {
		return ErrMissingSecretKey
	}
	if insecureSecretKeys[strings.ToLower(secret)] {
		return ErrInsecureSecretKey
	}
	if len(secret) < minSecretKeyLength {
		return fmt.Errorf("%w: need at least %d characters", ErrShortSecretKey, minSecretKeyLength)
	}
	return nil
}

// Location returns the configured timezone, or UTC when it cannot be loaded.
func (c *Config) Location() *time.Location {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}
