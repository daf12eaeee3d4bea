// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

/*
Package middleware provides the HTTP middleware used by the dashboard API.

All middleware here has the form func(http.HandlerFunc) http.HandlerFunc; the
api package adapts them for chi's r.Use.

Key Components:

  - RequestID: X-Request-ID propagation plus request/correlation IDs in the
    logging context
  - Session: the per-browser session ID that keys the top-ten cache
  - PrometheusMetrics: request count, latency and in-flight gauge, labeled by
    chi route pattern
  - Compression: gzip for clients that accept it

Typical stack:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.Session(middleware.SessionOptions{})))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))
*/
package middleware
