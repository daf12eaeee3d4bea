// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package analytics

import (
	"sort"

	"github.com/tomtom215/localescout/internal/models"
)

// RankCities sorts by count descending (city name breaks ties) and keeps
// at most n rows. The input slice is not modified.
func RankCities(rows []models.CityCount, n int) []models.CityCount {
	ranked := make([]models.CityCount, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].City < ranked[j].City
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// SortStarTotals orders a star distribution by star value ascending.
func SortStarTotals(rows []models.StarTotal) []models.StarTotal {
	sorted := make([]models.StarTotal, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Stars < sorted[j].Stars })
	return sorted
}
