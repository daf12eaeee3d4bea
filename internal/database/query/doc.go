// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

// Package query provides SQL building helpers for the database package.
//
// Every statement is built with Masterminds/squirrel using $n placeholders,
// which both DuckDB and PostgreSQL accept, so the same builders serve either
// driver. User input only ever reaches SQL as a bound argument.
//
// # Usage Example
//
//	sql, args, err := query.Builder().
//	    Select("category_id", "category_name").
//	    From("category_ref").
//	    Where(query.ContainsFold("category_name", "sea")).
//	    ToSql()
//	// SELECT category_id, category_name FROM category_ref
//	//   WHERE LOWER(category_name) LIKE $1 ESCAPE '\'
//	// args: ["%sea%"]
//
// # Joins
//
// The business/category and business/review joins used by several queries
// are exposed as constants (JoinCategory, JoinReview) so every query spells
// them the same way.
package query
