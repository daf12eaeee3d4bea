// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

// Package config loads Localescout configuration.
//
// Sources, lowest priority first:
//
//  1. Built-in defaults (defaultConfig)
//  2. YAML file: $CONFIG_PATH, ./config.yaml, /etc/localescout/config.yaml
//  3. A .env file in the working directory (or $DOTENV_PATH), if present
//  4. Process environment, mapped through envMappings
//
// The three values the dashboard cannot run without in production are the
// store credentials (DB_LOGIN, DB_PWORD) and the map token (MAPBOX_TOKEN).
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Supported store drivers.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "pgx"
)

// Config is the full application configuration.
type Config struct {
	Database  DatabaseConfig  `koanf:"database"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Map       MapConfig       `koanf:"map"`
	Analytics AnalyticsConfig `koanf:"analytics"`
}

// DatabaseConfig describes the read-only business/review store and its pool.
type DatabaseConfig struct {
	// Driver is "duckdb" (embedded file) or "pgx" (PostgreSQL).
	Driver string `koanf:"driver"`

	// Path is the DuckDB file; ":memory:" is allowed.
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`

	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Name     string `koanf:"name"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	SSLMode  string `koanf:"sslmode"`

	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	QueryTimeout    time.Duration `koanf:"query_timeout"`

	// SeedDemo creates the schema and loads the demo data set on startup.
	SeedDemo bool `koanf:"seed_demo"`
}

// DSN returns the connection string for the configured driver.
func (d *DatabaseConfig) DSN() string {
	if d.Driver == DriverPostgres {
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(d.User, d.Password),
			Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
			Path:   "/" + d.Name,
		}
		q := u.Query()
		if d.SSLMode != "" {
			q.Set("sslmode", d.SSLMode)
		}
		u.RawQuery = q.Encode()
		return u.String()
	}

	if d.Path == ":memory:" || d.Path == "" {
		return ""
	}
	params := url.Values{}
	if d.Threads > 0 {
		params.Set("threads", strconv.Itoa(d.Threads))
	}
	if d.MaxMemory != "" {
		params.Set("max_memory", d.MaxMemory)
	}
	if !d.SeedDemo {
		params.Set("access_mode", "read_only")
	}
	if len(params) == 0 {
		return d.Path
	}
	return fmt.Sprintf("%s?%s", d.Path, params.Encode())
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// Addr returns host:port for http.Server.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// MapConfig configures the Mapbox-backed map charts.
type MapConfig struct {
	Token string  `koanf:"token"`
	Style string  `koanf:"style"`
	Zoom  float64 `koanf:"zoom"`
}

// AnalyticsConfig holds dashboard defaults and query tunables.
type AnalyticsConfig struct {
	DefaultTag         string        `koanf:"default_tag"`
	DefaultCity        string        `koanf:"default_city"`
	TopN               int           `koanf:"top_n"`
	TopK               int           `koanf:"top_k"`
	ExcludedAttributes []string      `koanf:"excluded_attributes"`
	SessionTTL         time.Duration `koanf:"session_ttl"`
	CacheTTL           time.Duration `koanf:"cache_ttl"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from all sources and validates it.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	return LoadWithKoanf()
}
