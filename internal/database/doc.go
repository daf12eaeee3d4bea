// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

/*
Package database provides read access to the business and review store.

The store is reached through database/sql with one of two drivers:

  - duckdb: an embedded DuckDB file, or :memory: for tests and demos
  - pgx: PostgreSQL through pgx's stdlib adapter

Every query is built with squirrel and bound with $n placeholders, which
both drivers accept; user input never reaches the SQL text. Queries run
under the configured query timeout and through a gobreaker circuit
breaker. While the breaker is open, queries fail with ErrCircuitOpen.

# Tables

	business(business_id, name, city, latitude, longitude, stars, review_count, is_open)
	review(review_id, business_id, stars, date)
	category_ref(category_id, category_name)
	business_category(business_id, category_id)
	business_attributes(business_id, <one BOOLEAN column per attribute>)

CreateSchema creates these tables and SeedDemo fills them with a small
deterministic data set when DatabaseConfig.SeedDemo is set.

# Errors

ResolveTag returns ErrNoMatchingTag when no category name contains the
search text. Dependent queries are never run for an unresolved tag.
*/
package database
