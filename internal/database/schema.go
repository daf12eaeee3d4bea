// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package database

import (
	"context"
	"fmt"
)

// Attribute columns created by CreateSchema. Production stores carry many
// more; AttributeMatrix discovers whatever exists.
var schemaAttributeColumns = []string{
	"businessAcceptsBitcoin",
	"BikeParking",
	"WiFi",
	"OutdoorSeating",
	"RestaurantsDelivery",
	"RestaurantsTakeOut",
	"GoodForKids",
}

// getTableCreationQueries returns DDL accepted by both DuckDB and PostgreSQL.
func getTableCreationQueries() []string {
	attrs := ""
	for _, col := range schemaAttributeColumns {
		attrs += fmt.Sprintf(",\n\t\t\t%q BOOLEAN", col)
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS business (
			business_id VARCHAR PRIMARY KEY,
			name VARCHAR NOT NULL,
			city VARCHAR NOT NULL,
			latitude FLOAT8 NOT NULL,
			longitude FLOAT8 NOT NULL,
			stars FLOAT8,
			review_count INTEGER,
			is_open INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS review (
			review_id VARCHAR PRIMARY KEY,
			business_id VARCHAR NOT NULL,
			stars FLOAT8,
			date DATE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS category_ref (
			category_id INTEGER PRIMARY KEY,
			category_name VARCHAR NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS business_category (
			business_id VARCHAR NOT NULL,
			category_id INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS business_attributes (
			business_id VARCHAR PRIMARY KEY` + attrs + `
		)`,
	}
}

func getIndexQueries() []string {
	return []string{
		`CREATE INDEX IF NOT EXISTS idx_business_city ON business(city)`,
		`CREATE INDEX IF NOT EXISTS idx_business_category_category ON business_category(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_review_business ON review(business_id)`,
	}
}

// CreateSchema creates the business/review tables and their indexes if
// they do not exist. Request paths never call it.
func (db *DB) CreateSchema(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	for _, stmt := range append(getTableCreationQueries(), getIndexQueries()...) {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %s: %w", stmt, err)
		}
	}
	return nil
}
