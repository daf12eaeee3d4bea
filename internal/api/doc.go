// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

/*
Package api provides the HTTP layer of the Localescout dashboard.

Routes are served by chi. Every JSON endpoint answers with the standard
envelope from the models package:

	{"status": "success", "data": ..., "metadata": {"timestamp": ..., "query_time_ms": 12, "cached": false}}
	{"status": "error", "data": null, "metadata": {...}, "error": {"code": "NO_MATCHING_TAG", "message": "..."}}

Endpoints:

  - GET /                                  dashboard page (plotly.js)
  - GET /api/v1/health[/live|/ready]       health checks
  - GET /api/v1/categories?q=&limit=       category dropdown options
  - GET /api/v1/tags/resolve?tag=          tag to category resolution
  - GET /api/v1/charts/top-ten?tag=        cities with the most businesses for a tag
  - GET /api/v1/charts/similarity?city=    attributes most associated with being open
  - GET /api/v1/charts/geo?tag=&city=      open businesses on a scatter map
  - GET /api/v1/charts/density?tag=&city=  review count density map
  - GET /api/v1/charts/seasonality?tag=&city=
  - GET /api/v1/charts/review-stars?city=
  - GET /api/v1/dashboard?tag=&city=       every dashboard chart at once
  - GET /api/v1/config/map                 map token and defaults for the page
  - GET /metrics                           Prometheus

Chart endpoints accept allow_empty=true to receive a placeholder figure
instead of a 404 when the selection has no rows.
*/
package api
