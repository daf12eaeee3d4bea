// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package api

import (
	"context"
	"time"

	"github.com/tomtom215/localescout/internal/config"
	"github.com/tomtom215/localescout/internal/dashboard"
)

// Version is reported by the health endpoint. Overridden at build time.
var Version = "dev"

// StoreStatus is what the health endpoints need from the data store.
type StoreStatus interface {
	Ping(ctx context.Context) error
	Driver() string
	BreakerState() string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_charts.go: chart and dashboard endpoints
//   - handlers_core.go: categories, tag resolution and map settings
//   - handlers_health.go: health checks
//   - handlers_helpers.go: response helpers
type Handler struct {
	svc       *dashboard.Service
	store     StoreStatus
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler.
func NewHandler(svc *dashboard.Service, store StoreStatus, cfg *config.Config) *Handler {
	return &Handler{
		svc:       svc,
		store:     store,
		config:    cfg,
		startTime: time.Now(),
	}
}
