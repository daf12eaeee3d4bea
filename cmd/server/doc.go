// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

/*
Package main is the entry point for the Localescout server.

Localescout is a location scouting dashboard over a business and review
data set. Pick a category tag and a city and it answers: which cities have
the most businesses with that tag, which attributes go with staying open,
where the open businesses are, where reviews concentrate, and how reviews
vary by month.

# Application Architecture

	RootSupervisor ("localescout")
	├── DataSupervisor ("data-layer")
	│   └── Store monitor (ping, pool gauge)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (dashboard UI, JSON API, /metrics)

Initialization order:

 1. Configuration: Koanf v2 over defaults, config.yaml, .env and environment
 2. Logging: zerolog, with a slog adapter for the supervisor
 3. Store: DuckDB file or PostgreSQL through database/sql, optionally seeded
 4. Dashboard service: chart builder, per-session top-ten store, query cache
 5. HTTP: Chi router with CORS, rate limiting, sessions and compression
 6. Supervisor tree: runs everything until SIGINT or SIGTERM

# Configuration

Common environment variables:

	DB_DRIVER=duckdb          # or pgx
	DUCKDB_PATH=/data/localescout.duckdb
	SEED_DEMO=true            # create schema and load demo rows
	HTTP_PORT=8080
	MAPBOX_TOKEN=pk....       # optional; without it maps use open-street-map
	DEFAULT_TAG=Seafood
	DEFAULT_CITY=Toronto

# Example Usage

	SEED_DEMO=true DUCKDB_PATH=:memory: ./localescout
	curl 'localhost:8080/api/v1/charts/top-ten?tag=seafood'
*/
package main
