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

// OpenBusinessesGeo returns the open businesses in city that carry tagID,
// with their coordinates and star rating.
func (db *DB) OpenBusinessesGeo(ctx context.Context, tagID int64, city string) ([]models.GeoBusiness, error) {
	q := db.sb.
		Select("b.name", "b.latitude", "b.longitude", "b.stars").
		From("business b").
		Join(query.JoinCategory).
		Where(query.OpenInCity(tagID, city)).
		OrderBy("b.name", "b.business_id")

	return selectRows(ctx, db, "open_businesses_geo", "business", q, func(rows *sql.Rows) (models.GeoBusiness, error) {
		var g models.GeoBusiness
		err := rows.Scan(&g.Name, &g.Latitude, &g.Longitude, &g.Stars)
		return g, err
	})
}

// OpenBusinessesDensity is OpenBusinessesGeo with review counts in place of
// stars, for the density heatmap.
func (db *DB) OpenBusinessesDensity(ctx context.Context, tagID int64, city string) ([]models.DensityBusiness, error) {
	q := db.sb.
		Select("b.name", "b.latitude", "b.longitude", "b.review_count").
		From("business b").
		Join(query.JoinCategory).
		Where(query.OpenInCity(tagID, city)).
		OrderBy("b.name", "b.business_id")

	return selectRows(ctx, db, "open_businesses_density", "business", q, func(rows *sql.Rows) (models.DensityBusiness, error) {
		var d models.DensityBusiness
		err := rows.Scan(&d.Name, &d.Latitude, &d.Longitude, &d.ReviewCount)
		return d, err
	})
}
