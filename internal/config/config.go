// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

// Package config loads and validates the Pitwall configuration from
// layered sources: built-in defaults, an optional YAML file and
// environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root configuration.
type Config struct {
	Dataset DatasetConfig `koanf:"dataset"`
	Server  ServerConfig  `koanf:"server"`
	API     APIConfig     `koanf:"api"`
	Cache   CacheConfig   `koanf:"cache"`
	Logging LoggingConfig `koanf:"logging"`
}

// DatasetConfig locates the CSV exports the fact table is built from.
type DatasetConfig struct {
	// Dir holds the reference CSV files (results.csv, races.csv, ...).
	Dir string `koanf:"dir" validate:"required"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required,min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=0"`
}

// APIConfig configures request handling policy.
type APIConfig struct {
	// RateLimitReqs requests per RateLimitWindow per client IP. Zero
	// disables rate limiting.
	RateLimitReqs   int           `koanf:"rate_limit_reqs" validate:"min=0"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window" validate:"min=0"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// CacheConfig sizes the response cache.
type CacheConfig struct {
	Entries int           `koanf:"entries" validate:"min=0"`
	TTL     time.Duration `koanf:"ttl" validate:"min=0"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.API.RateLimitReqs > 0 && c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("invalid configuration: rate limiting enabled with a zero window")
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
