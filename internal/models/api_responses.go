// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package models

import (
	"time"
)

// APIResponse is the envelope returned by every JSON endpoint.
//
// Status is "success" or "error". On success Data holds the payload; on
// error Error is populated and Data is null.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"role": "top_ten", "figure": {"data": [...], "layout": {...}}},
//	  "metadata": {
//	    "timestamp": "2026-03-02T12:00:00Z",
//	    "query_time_ms": 18
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {
//	    "code": "NO_MATCHING_TAG",
//	    "message": "no category matches tag \"zzz\""
//	  },
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and cache information for a response.
// QueryTimeMS is 0 and Cached is true when the payload came from a cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is the machine-readable error body.
//
// Codes used by the API:
//   - VALIDATION_ERROR: bad or missing query parameters
//   - NO_MATCHING_TAG: the tag matched no category
//   - NO_RESULTS: the tag/city combination has no rows to chart
//   - DATABASE_ERROR: the store query failed
//   - SERVICE_UNAVAILABLE: the store circuit breaker is open
//   - NOT_FOUND: unknown route
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status        string       `json:"status"`
	Version       string       `json:"version"`
	StoreDriver   string       `json:"store_driver"`
	StoreOK       bool         `json:"store_ok"`
	BreakerState  string       `json:"breaker_state"`
	UptimeSeconds float64      `json:"uptime_seconds"`
	Cache         *CacheStatus `json:"cache,omitempty"`
}

// CacheStatus summarizes the query result cache and the per-session
// top-ten tables.
type CacheStatus struct {
	QueryHits     int64   `json:"query_hits"`
	QueryMisses   int64   `json:"query_misses"`
	QueryHitRate  float64 `json:"query_hit_rate"`
	QueryKeys     int64   `json:"query_keys"`
	SessionTables int     `json:"session_tables"`
}

// MapSettings is handed to the browser so it can render map charts.
type MapSettings struct {
	Token       string  `json:"token,omitempty"`
	Style       string  `json:"style"`
	Zoom        float64 `json:"zoom"`
	DefaultTag  string  `json:"default_tag"`
	DefaultCity string  `json:"default_city"`
}
