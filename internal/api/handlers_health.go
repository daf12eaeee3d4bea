// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/localescout/internal/models"
)

func (h *Handler) healthStatus(r *http.Request) models.HealthStatus {
	status := models.HealthStatus{
		Status:        "healthy",
		Version:       Version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
	if h.svc != nil {
		cs := h.svc.CacheStatus()
		status.Cache = &cs
	}
	if h.store == nil {
		status.Status = "degraded"
		return status
	}

	status.StoreDriver = h.store.Driver()
	status.BreakerState = h.store.BreakerState()
	status.StoreOK = h.store.Ping(r.Context()) == nil
	if !status.StoreOK || status.BreakerState == "open" {
		status.Status = "degraded"
	}
	return status
}

// Health handles GET /api/v1/health
//
// Always 200; Status is "degraded" when the store is unreachable or its
// circuit breaker is open.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     h.healthStatus(r),
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthLive handles liveness check requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness check requests (Kubernetes-style)
// Returns 503 until the store answers a ping.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := h.healthStatus(r)

	statusCode := http.StatusOK
	status := "ready"
	if !health.StoreOK {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
