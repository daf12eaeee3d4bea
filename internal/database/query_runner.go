// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/tomtom215/localescout/internal/logging"
	"github.com/tomtom215/localescout/internal/metrics"
)

// scanFunc scans a single row into a result type.
type scanFunc[T any] func(*sql.Rows) (T, error)

// selectRows builds q, runs it through the breaker with the query timeout
// applied and scans every row. operation and table label the metrics.
func selectRows[T any](ctx context.Context, db *DB, operation, table string, q sq.SelectBuilder, scan scanFunc[T]) ([]T, error) {
	var results []T
	err := db.withRows(ctx, operation, table, q, func(rows *sql.Rows) error {
		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				return err
			}
			results = append(results, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// withRows runs q and hands the open result set to consume.
func (db *DB) withRows(ctx context.Context, operation, table string, q sq.SelectBuilder, consume func(*sql.Rows) error) error {
	stmt, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s query: %w", operation, err)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	err = db.breaker.execute(func() error {
		rows, err := db.conn.QueryContext(ctx, stmt, args...)
		if err != nil {
			return err
		}
		defer closeWithLog(rows, "rows")

		if err := consume(rows); err != nil {
			return err
		}
		return rows.Err()
	})
	elapsed := time.Since(start)

	metrics.RecordDBQuery(operation, table, elapsed, err)
	metrics.DBOpenConnections.Set(float64(db.conn.Stats().OpenConnections))

	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("operation", operation).
			Dur("elapsed", elapsed).
			Msg("Store query failed")
		return fmt.Errorf("failed to query %s: %w", operation, err)
	}

	logging.Ctx(ctx).Debug().
		Str("operation", operation).
		Dur("elapsed", elapsed).
		Msg("Store query")
	return nil
}
