// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// devTokenSecret is the signing secret used when none is configured.
// Accepted only in development; Validate rejects it elsewhere.
const devTokenSecret = "onedate-development-secret"

// Config is the master configuration for OneDate.
type Config struct {
	// Environment identifies the deployment type (development,
	// staging, production).
	Environment Environment `yaml:"environment"`

	// Root is the base directory for OneDate data. Other paths may
	// reference it as ${ONEDATE_ROOT}.
	Root string `yaml:"root"`

	// Server configures the HTTP API listener.
	Server ServerConfig `yaml:"server"`

	// Database configures the SQLite document store.
	Database DatabaseConfig `yaml:"database"`

	// Auth configures password hashing and bearer tokens.
	Auth AuthConfig `yaml:"auth"`

	// Media configures uploaded blob storage.
	Media MediaConfig `yaml:"media"`

	// Per-environment overrides, applied after the base config loads.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Server   *ServerConfig   `yaml:"server,omitempty"`
	Database *DatabaseConfig `yaml:"database,omitempty"`
	Auth     *AuthConfig     `yaml:"auth,omitempty"`
	Media    *MediaConfig    `yaml:"media,omitempty"`
}

// ServerConfig configures the HTTP API listener.
type ServerConfig struct {
	// Address is the TCP listen address (e.g., ":8000",
	// "127.0.0.1:8000").
	Address string `yaml:"address"`

	// ShutdownTimeout is the maximum time to wait for in-flight
	// requests during graceful shutdown (Go duration string).
	// Default: 10s.
	ShutdownTimeout string `yaml:"shutdown_timeout"`

	// BaseURL is the externally visible URL of this server, used to
	// build media URLs for locally stored uploads.
	// Default: http://localhost:8000.
	BaseURL string `yaml:"base_url"`
}

// DatabaseConfig configures the SQLite document store.
type DatabaseConfig struct {
	// Path is the SQLite database file. The parent directory is
	// created at startup if missing.
	Path string `yaml:"path"`

	// PoolSize is the number of connections in the pool. Zero means
	// the pool picks its default.
	PoolSize int `yaml:"pool_size"`
}

// AuthConfig configures password hashing and bearer tokens.
type AuthConfig struct {
	// TokenSecret is the HMAC secret for signing access tokens.
	// Required outside development. Supports ${VAR} expansion so the
	// secret can live in the process environment rather than the file.
	TokenSecret string `yaml:"token_secret"`

	// TokenTTLMinutes is the access token lifetime in minutes.
	// Default: 30.
	TokenTTLMinutes int `yaml:"token_ttl_minutes"`

	// BcryptCost is the bcrypt work factor for password hashing.
	// Zero means the bcrypt default cost.
	BcryptCost int `yaml:"bcrypt_cost"`
}

// MediaConfig configures uploaded blob storage.
type MediaConfig struct {
	// Dir is the directory for locally stored media blobs.
	Dir string `yaml:"dir"`

	// RemoteEndpoint is the URL of the external storage service that
	// uploads are pushed to. Empty disables remote upload; blobs are
	// served locally.
	RemoteEndpoint string `yaml:"remote_endpoint"`

	// RemoteToken is the bearer credential for the remote storage
	// service. Supports ${VAR} expansion.
	RemoteToken string `yaml:"remote_token"`
}

// Default returns the default configuration. These defaults are used
// as a base before loading the config file. They exist primarily to
// ensure all fields have sensible zero-values, not as a fallback;
// the config file is required.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultRoot := filepath.Join(homeDir, ".local", "share", "onedate")

	return &Config{
		Environment: Development,
		Root:        defaultRoot,
		Server: ServerConfig{
			Address:         ":8000",
			ShutdownTimeout: "10s",
			BaseURL:         "http://localhost:8000",
		},
		Database: DatabaseConfig{
			Path: "${ONEDATE_ROOT}/onedate.db",
		},
		Auth: AuthConfig{
			TokenSecret:     devTokenSecret,
			TokenTTLMinutes: 30,
		},
		Media: MediaConfig{
			Dir: "${ONEDATE_ROOT}/media",
		},
	}
}

// Load loads configuration from the ONEDATE_CONFIG environment
// variable. There are no fallbacks or defaults: if ONEDATE_CONFIG is
// not set, this fails.
func Load() (*Config, error) {
	configPath := os.Getenv("ONEDATE_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("ONEDATE_CONFIG environment variable not set; " +
			"set it to the path of your onedate.yaml config file, or use --config flag")
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment variables
// do not override config values; the only expansion performed is
// ${HOME} and similar variables in path and secret fields.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// applyEnvironmentOverrides applies the section matching Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}

	if overrides == nil {
		return
	}

	if overrides.Server != nil {
		if overrides.Server.Address != "" {
			c.Server.Address = overrides.Server.Address
		}
		if overrides.Server.ShutdownTimeout != "" {
			c.Server.ShutdownTimeout = overrides.Server.ShutdownTimeout
		}
		if overrides.Server.BaseURL != "" {
			c.Server.BaseURL = overrides.Server.BaseURL
		}
	}

	if overrides.Database != nil {
		if overrides.Database.Path != "" {
			c.Database.Path = overrides.Database.Path
		}
		if overrides.Database.PoolSize != 0 {
			c.Database.PoolSize = overrides.Database.PoolSize
		}
	}

	if overrides.Auth != nil {
		if overrides.Auth.TokenSecret != "" {
			c.Auth.TokenSecret = overrides.Auth.TokenSecret
		}
		if overrides.Auth.TokenTTLMinutes != 0 {
			c.Auth.TokenTTLMinutes = overrides.Auth.TokenTTLMinutes
		}
		if overrides.Auth.BcryptCost != 0 {
			c.Auth.BcryptCost = overrides.Auth.BcryptCost
		}
	}

	if overrides.Media != nil {
		if overrides.Media.Dir != "" {
			c.Media.Dir = overrides.Media.Dir
		}
		if overrides.Media.RemoteEndpoint != "" {
			c.Media.RemoteEndpoint = overrides.Media.RemoteEndpoint
		}
		if overrides.Media.RemoteToken != "" {
			c.Media.RemoteToken = overrides.Media.RemoteToken
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in path
// and secret fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"ONEDATE_ROOT": c.Root,
		"HOME":         os.Getenv("HOME"),
	}

	c.Root = expandVars(c.Root, vars)
	vars["ONEDATE_ROOT"] = c.Root // Update for dependent paths.

	c.Database.Path = expandVars(c.Database.Path, vars)
	c.Media.Dir = expandVars(c.Media.Dir, vars)
	c.Auth.TokenSecret = expandVars(c.Auth.TokenSecret, vars)
	c.Media.RemoteToken = expandVars(c.Media.RemoteToken, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// TokenTTL returns the configured token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLMinutes) * time.Minute
}

// ShutdownTimeout parses the server shutdown timeout, falling back to
// 10 seconds on an empty or malformed value.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.Root == "" {
		errs = append(errs, fmt.Errorf("root is required"))
	}
	if c.Server.Address == "" {
		errs = append(errs, fmt.Errorf("server.address is required"))
	}
	if c.Database.Path == "" {
		errs = append(errs, fmt.Errorf("database.path is required"))
	}
	if c.Auth.TokenSecret == "" {
		errs = append(errs, fmt.Errorf("auth.token_secret is required"))
	}
	if c.Environment != Development && c.Auth.TokenSecret == devTokenSecret {
		errs = append(errs, fmt.Errorf("auth.token_secret must be set explicitly outside development"))
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		errs = append(errs, fmt.Errorf("auth.token_ttl_minutes must be positive"))
	}
	if c.Media.Dir == "" {
		errs = append(errs, fmt.Errorf("media.dir is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// EnsurePaths creates all configured directories if they don't exist.
func (c *Config) EnsurePaths() error {
	paths := []string{
		c.Root,
		filepath.Dir(c.Database.Path),
		c.Media.Dir,
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}

	return nil
}
