// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package models

// Tag is a resolved category from category_ref.
//
// Example:
//
//	{"id": 2, "name": "Seafood"}
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CityCount is one row of the top-cities ranking for a tag.
//
// Example:
//
//	{"city": "Toronto", "count": 412}
type CityCount struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

// GeoBusiness is an open business plotted on the geo scatter map.
type GeoBusiness struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Stars     float64 `json:"stars"`
}

// DensityBusiness is an open business weighted by its review count on
// the density heatmap.
type DensityBusiness struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ReviewCount int64   `json:"review_count"`
}

// MonthCount is the number of reviews in one calendar month (1-12).
// Label is the three-letter month name.
type MonthCount struct {
	Month int    `json:"month"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// StarTotal is the number of reviews with a given star rating.
type StarTotal struct {
	Stars float64 `json:"stars"`
	Count int64   `json:"count"`
}

// AttributeMatrix holds the business_attributes rows for one city as
// boolean columns alongside the is_open flag. Columns[i] names Values[i];
// every Values[i] and Open have the same length (one entry per business).
type AttributeMatrix struct {
	City    string   `json:"city"`
	Open    []bool   `json:"open"`
	Columns []string `json:"columns"`
	Values  [][]bool `json:"values"`
}

// Rows returns the number of businesses in the matrix.
func (m *AttributeMatrix) Rows() int {
	return len(m.Open)
}

// AttributeScore is the Jaccard similarity between an attribute column and
// the is_open column.
type AttributeScore struct {
	Attribute  string  `json:"attribute"`
	Similarity float64 `json:"similarity"`
}

// Centroid is the center of the bounding box around a set of points.
type Centroid struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoResult is the geo query output with its map anchor.
type GeoResult struct {
	City       string        `json:"city"`
	Tag        Tag           `json:"tag"`
	Businesses []GeoBusiness `json:"businesses"`
	Center     Centroid      `json:"center"`
}

// DensityResult is the density query output with its map anchor and the
// maximum review count used to scale the color range.
type DensityResult struct {
	City           string            `json:"city"`
	Tag            Tag               `json:"tag"`
	Businesses     []DensityBusiness `json:"businesses"`
	Center         Centroid          `json:"center"`
	MaxReviewCount int64             `json:"max_review_count"`
}
