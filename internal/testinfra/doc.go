// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

// Package testinfra starts Docker containers for integration tests.
//
// Files are built only with the integration tag:
//
//	go test -tags integration ./internal/database/...
//
// PostgresContainer runs a throwaway PostgreSQL server and hands back a
// config.DatabaseConfig for the pgx driver, so the store can be exercised
// against the same database engine production deployments use. Tests skip
// when Docker is unavailable.
package testinfra
