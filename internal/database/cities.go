// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package database

import (
	"context"
	"database/sql"

	"github.com/tomtom215/localescout/internal/database/query"
	"github.com/tomtom215/localescout/internal/models"
)

// TopCities counts the businesses carrying tagID in each city and returns
// the limit cities with the most, highest count first. Ties order by city.
func (db *DB) TopCities(ctx context.Context, tagID int64, limit int) ([]models.CityCount, error) {
	q := db.sb.
		Select("b.city", "COUNT(*) AS cnt").
		From("business b").
		Join(query.JoinCategory).
		Where("bc.category_id = ?", tagID).
		GroupBy("b.city").
		OrderBy("cnt DESC", "b.city ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	return selectRows(ctx, db, "top_cities", "business", q, func(rows *sql.Rows) (models.CityCount, error) {
		var c models.CityCount
		err := rows.Scan(&c.City, &c.Count)
		return c, err
	})
}
