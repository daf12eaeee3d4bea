// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package analytics

import (
	"errors"
	"math"

	"github.com/tomtom215/localescout/internal/models"
)

// Point is anything with a latitude and longitude.
type Point interface {
	Lat() float64
	Lon() float64
}

type geoPoint models.GeoBusiness

func (p geoPoint) Lat() float64 { return p.Latitude }
func (p geoPoint) Lon() float64 { return p.Longitude }

type densityPoint models.DensityBusiness

func (p densityPoint) Lat() float64 { return p.Latitude }
func (p densityPoint) Lon() float64 { return p.Longitude }

// BoundingBoxCentroid returns ((maxLat+minLat)/2, (maxLon+minLon)/2).
// This is the center of the bounding box, not a center of mass.
func BoundingBoxCentroid(points []Point) (models.Centroid, error) {
	if len(points) == 0 {
		return models.Centroid{}, ErrEmptyResult
	}

	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLon, maxLon := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lat, lon := p.Lat(), p.Lon()
		if math.IsNaN(lat) || math.IsNaN(lon) {
			return models.Centroid{}, errors.New("coordinate is NaN")
		}
		minLat = math.Min(minLat, lat)
		maxLat = math.Max(maxLat, lat)
		minLon = math.Min(minLon, lon)
		maxLon = math.Max(maxLon, lon)
	}

	return models.Centroid{
		Latitude:  (maxLat + minLat) / 2,
		Longitude: (maxLon + minLon) / 2,
	}, nil
}

// GeoCentroid is BoundingBoxCentroid over geo query rows.
func GeoCentroid(rows []models.GeoBusiness) (models.Centroid, error) {
	points := make([]Point, len(rows))
	for i, r := range rows {
		points[i] = geoPoint(r)
	}
	return BoundingBoxCentroid(points)
}

// DensitySummary returns the bounding-box centroid and the largest review
// count of the density query rows.
func DensitySummary(rows []models.DensityBusiness) (models.Centroid, int64, error) {
	points := make([]Point, len(rows))
	var maxCount int64
	for i, r := range rows {
		points[i] = densityPoint(r)
		if i == 0 || r.ReviewCount > maxCount {
			maxCount = r.ReviewCount
		}
	}
	center, err := BoundingBoxCentroid(points)
	if err != nil {
		return models.Centroid{}, 0, err
	}
	return center, maxCount, nil
}
