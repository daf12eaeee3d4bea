// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tomtom215/localescout/internal/config"
	"github.com/tomtom215/localescout/internal/database/query"
	"github.com/tomtom215/localescout/internal/logging"
)

const defaultQueryTimeout = 30 * time.Second

// DB wraps the pooled store connection and provides the read queries the
// dashboard runs. It is safe for concurrent use.
type DB struct {
	conn    *sql.DB
	cfg     *config.DatabaseConfig
	sb      sq.StatementBuilderType
	breaker *queryBreaker
}

// New opens the configured store, sizes the pool and verifies the
// connection. With SeedDemo set it also creates the schema and loads the
// demo data set.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	if cfg == nil {
		return nil, errors.New("database config is nil")
	}

	if cfg.Driver == config.DriverDuckDB && cfg.SeedDemo && cfg.Path != "" && cfg.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	conn, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Driver, err)
	}

	db := NewWithConn(conn, cfg)

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to reach %s store: %w", cfg.Driver, err)
	}

	if cfg.SeedDemo {
		seedCtx, seedCancel := context.WithTimeout(context.Background(), time.Minute)
		defer seedCancel()
		if err := db.CreateSchema(seedCtx); err != nil {
			closeQuietly(conn)
			return nil, err
		}
		if err := db.SeedDemo(seedCtx); err != nil {
			closeQuietly(conn)
			return nil, err
		}
	}

	logging.Info().
		Str("driver", cfg.Driver).
		Int("max_open_conns", cfg.MaxOpenConns).
		Bool("demo_seed", cfg.SeedDemo).
		Msg("Store connected")

	return db, nil
}

// NewWithConn wraps an already opened connection. Tests use it with
// go-sqlmock; New uses it after sql.Open.
func NewWithConn(conn *sql.DB, cfg *config.DatabaseConfig) *DB {
	if cfg == nil {
		cfg = &config.DatabaseConfig{Driver: config.DriverDuckDB}
	}
	db := &DB{
		conn:    conn,
		cfg:     cfg,
		sb:      query.Builder(),
		breaker: newQueryBreaker("store-" + cfg.Driver),
	}
	db.configureConnectionPool()
	return db
}

// configureConnectionPool applies the pool limits from config.
func (db *DB) configureConnectionPool() {
	if db.cfg.MaxOpenConns > 0 {
		db.conn.SetMaxOpenConns(db.cfg.MaxOpenConns)
	}
	if db.cfg.MaxIdleConns > 0 {
		db.conn.SetMaxIdleConns(db.cfg.MaxIdleConns)
	}
	if db.cfg.ConnMaxLifetime > 0 {
		db.conn.SetConnMaxLifetime(db.cfg.ConnMaxLifetime)
	}
	if db.cfg.ConnMaxIdleTime > 0 {
		db.conn.SetConnMaxIdleTime(db.cfg.ConnMaxIdleTime)
	}
}

// Conn returns the underlying pool.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.cfg.Driver
}

// BreakerState reports the query circuit breaker state.
func (db *DB) BreakerState() string {
	return db.breaker.State()
}

// Stats returns connection pool statistics.
func (db *DB) Stats() sql.DBStats {
	if db.conn == nil {
		return sql.DBStats{}
	}
	return db.conn.Stats()
}

// Ping checks if the store is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return errors.New("database connection is nil")
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	return db.conn.PingContext(ctx)
}

// Close closes the pool.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// ensureContext applies the configured query timeout when ctx has no
// deadline of its own.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := db.cfg.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	if ctx == nil {
		return context.WithTimeout(context.Background(), timeout)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}
