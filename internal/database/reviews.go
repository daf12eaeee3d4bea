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

// MonthlyReviewCounts counts reviews per calendar month for businesses in
// city carrying tagID. Months without reviews are absent; see
// analytics.FillMonths.
func (db *DB) MonthlyReviewCounts(ctx context.Context, tagID int64, city string) ([]models.MonthCount, error) {
	q := db.sb.
		Select("CAST(EXTRACT(MONTH FROM r.date) AS INTEGER) AS mnth", "COUNT(*) AS cnt").
		From("business b").
		Join(query.JoinReview).
		Join("business_category bc ON bc.business_id = r.business_id").
		Where(query.InCityWithTag(tagID, city)).
		GroupBy("mnth").
		OrderBy("mnth")

	return selectRows(ctx, db, "monthly_review_counts", "review", q, func(rows *sql.Rows) (models.MonthCount, error) {
		var m models.MonthCount
		err := rows.Scan(&m.Month, &m.Count)
		return m, err
	})
}

// ReviewStarTotals counts the reviews of businesses in city per star value,
// lowest star first.
func (db *DB) ReviewStarTotals(ctx context.Context, city string) ([]models.StarTotal, error) {
	q := db.sb.
		Select("r.stars", "COUNT(*) AS total_count").
		From("business b").
		Join(query.JoinReview).
		Where("b.city = ?", city).
		GroupBy("r.stars").
		OrderBy("r.stars")

	return selectRows(ctx, db, "review_star_totals", "review", q, func(rows *sql.Rows) (models.StarTotal, error) {
		var s models.StarTotal
		err := rows.Scan(&s.Stars, &s.Count)
		return s, err
	})
}
