// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package analytics

import "github.com/tomtom215/localescout/internal/models"

// MonthLabels are the x-axis labels of the seasonality chart, January first.
var MonthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FillMonths left-joins sparse per-month counts onto all twelve months.
// The result always has 12 rows in month order; months missing from counts
// get 0. Counts outside 1..12 are dropped and duplicate months are summed.
func FillMonths(counts []models.MonthCount) []models.MonthCount {
	var totals [12]int64
	for _, c := range counts {
		if c.Month < 1 || c.Month > 12 {
			continue
		}
		totals[c.Month-1] += c.Count
	}

	out := make([]models.MonthCount, 12)
	for i := range out {
		out[i] = models.MonthCount{Month: i + 1, Label: MonthLabels[i], Count: totals[i]}
	}
	return out
}
