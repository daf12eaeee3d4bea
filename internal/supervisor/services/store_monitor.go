// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package services

import (
	"context"
	"database/sql"
	"sync/atomic"
	"time"

	"github.com/tomtom215/localescout/internal/logging"
	"github.com/tomtom215/localescout/internal/metrics"
)

// StoreChecker is the part of *database.DB the monitor needs.
type StoreChecker interface {
	Ping(ctx context.Context) error
	BreakerState() string
	Stats() sql.DBStats
}

// StoreMonitor periodically checks the analytics store.
type StoreMonitor struct {
	store       StoreChecker
	interval    time.Duration
	pingTimeout time.Duration
	healthy     atomic.Bool
	checks      atomic.Int64
}

// NewStoreMonitor returns a monitor that checks store every interval.
// Zero or negative interval means 30s.
func NewStoreMonitor(store StoreChecker, interval time.Duration) *StoreMonitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	m := &StoreMonitor{
		store:       store,
		interval:    interval,
		pingTimeout: 5 * time.Second,
	}
	m.healthy.Store(true)
	return m
}

// Serve implements suture.Service. It checks once immediately, then on
// every tick until ctx ends.
func (m *StoreMonitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *StoreMonitor) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, m.pingTimeout)
	err := m.store.Ping(pingCtx)
	cancel()
	m.checks.Add(1)

	stats := m.store.Stats()
	metrics.DBOpenConnections.Set(float64(stats.OpenConnections))

	ok := err == nil
	if prev := m.healthy.Swap(ok); prev == ok {
		return
	}
	if ok {
		logging.Info().
			Int("open_connections", stats.OpenConnections).
			Msg("Store is healthy again")
		return
	}
	logging.Warn().Err(err).
		Str("breaker", m.store.BreakerState()).
		Int("open_connections", stats.OpenConnections).
		Msg("Store health check failed")
}

// Healthy reports the result of the most recent check.
func (m *StoreMonitor) Healthy() bool {
	return m.healthy.Load()
}

// Checks returns the number of checks run so far.
func (m *StoreMonitor) Checks() int64 {
	return m.checks.Load()
}

func (m *StoreMonitor) String() string {
	return "store-monitor"
}
