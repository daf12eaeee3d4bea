// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package services

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/localescout/internal/metrics"
)

var _ suture.Service = (*StoreMonitor)(nil)

type fakeStore struct {
	failing atomic.Bool
	pings   atomic.Int32
	open    int
}

func (p *fakeStore) Ping(ctx context.Context) error {
	p.pings.Add(1)
	if p.failing.Load() {
		return errors.New("connection refused")
	}
	return ctx.Err()
}

func (p *fakeStore) BreakerState() string {
	if p.failing.Load() {
		return "open"
	}
	return "closed"
}

func (p *fakeStore) Stats() sql.DBStats {
	return sql.DBStats{OpenConnections: p.open}
}

func TestNewStoreMonitor_DefaultInterval(t *testing.T) {
	m := NewStoreMonitor(&fakeStore{}, 0)
	if m.interval != 30*time.Second {
		t.Errorf("interval = %v, want 30s", m.interval)
	}
	if !m.Healthy() {
		t.Error("monitor should start healthy")
	}
	if m.String() != "store-monitor" {
		t.Errorf("String() = %q", m.String())
	}
}

func TestStoreMonitor_Transitions(t *testing.T) {
	store := &fakeStore{open: 3}
	m := NewStoreMonitor(store, time.Hour)

	m.check(context.Background())
	if !m.Healthy() {
		t.Error("healthy store reported unhealthy")
	}
	if got := testutil.ToFloat64(metrics.DBOpenConnections); got != 3 {
		t.Errorf("open connections gauge = %v, want 3", got)
	}

	store.failing.Store(true)
	m.check(context.Background())
	if m.Healthy() {
		t.Error("failing ping should mark the store unhealthy")
	}

	store.failing.Store(false)
	m.check(context.Background())
	if !m.Healthy() {
		t.Error("recovered ping should mark the store healthy")
	}
	if m.Checks() != 3 {
		t.Errorf("Checks() = %d, want 3", m.Checks())
	}
}

func TestStoreMonitor_ServeTicksUntilCanceled(t *testing.T) {
	store := &fakeStore{}
	m := NewStoreMonitor(store, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	if err := m.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
	if store.pings.Load() < 3 {
		t.Errorf("pings = %d, want several", store.pings.Load())
	}
}

func TestStoreMonitor_FailingPingDoesNotStop(t *testing.T) {
	store := &fakeStore{}
	store.failing.Store(true)
	m := NewStoreMonitor(store, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := m.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want to run until the deadline", err)
	}
	if m.Healthy() {
		t.Error("monitor should report unhealthy")
	}
}
