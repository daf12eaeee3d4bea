// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"json": true, "console": true,
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateMap(); err != nil {
		return err
	}
	if err := c.validateAnalytics(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case DriverDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DB_DRIVER=duckdb")
		}
	case DriverPostgres:
		if err := c.validatePostgres(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("DB_DRIVER must be one of: duckdb, pgx (got %q)", c.Database.Driver)
	}

	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("DB_POOL_SIZE must be at least 1")
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("DB_MAX_IDLE_CONNS must be between 0 and DB_POOL_SIZE")
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validatePostgres() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required when DB_DRIVER=pgx")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required when DB_DRIVER=pgx")
	}
	if c.Database.User == "" {
		return fmt.Errorf("DB_LOGIN is required when DB_DRIVER=pgx")
	}
	if c.IsProduction() && c.Database.Password == "" {
		return fmt.Errorf("DB_PWORD is required in production")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("DB_PORT must be between 1 and 65535")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// validateMap requires a token only in production. Without one the map
// charts use the token-free open-street-map style.
func (c *Config) validateMap() error {
	if c.IsProduction() && strings.TrimSpace(c.Map.Token) == "" {
		return fmt.Errorf("MAPBOX_TOKEN is required in production")
	}
	if c.Map.Zoom < 0 || c.Map.Zoom > 22 {
		return fmt.Errorf("MAP_ZOOM must be between 0 and 22")
	}
	return nil
}

func (c *Config) validateAnalytics() error {
	if c.Analytics.TopN < 1 {
		return fmt.Errorf("TOP_N must be at least 1")
	}
	if c.Analytics.TopK < 1 {
		return fmt.Errorf("TOP_K must be at least 1")
	}
	if strings.TrimSpace(c.Analytics.DefaultTag) == "" {
		return fmt.Errorf("DEFAULT_TAG must not be empty")
	}
	if strings.TrimSpace(c.Analytics.DefaultCity) == "" {
		return fmt.Errorf("DEFAULT_CITY must not be empty")
	}
	if c.Analytics.SessionTTL <= 0 || c.Analytics.CacheTTL <= 0 {
		return fmt.Errorf("SESSION_TTL and QUERY_CACHE_TTL must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
