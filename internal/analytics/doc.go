// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

// Package analytics reshapes store rows into the tables the charts plot.
//
// Everything here is a pure function over models types:
//
//   - RankCities: sort and truncate the top-cities table
//   - TopJaccard: score attribute columns against is_open and keep the best K
//   - BoundingBoxCentroid and DensitySummary: map anchors for the geo charts
//   - FillMonths: left-join sparse monthly counts onto Jan..Dec
//
// Functions that would otherwise compute over an empty set return
// ErrEmptyResult instead of NaN.
package analytics
