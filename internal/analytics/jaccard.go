// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package analytics

import (
	"fmt"
	"sort"

	"github.com/tomtom215/localescout/internal/models"
)

// Jaccard returns |a∩b| / |a∪b| over the true positions of two equal-length
// boolean vectors. ok is false when neither vector has a true value, since
// the ratio is undefined there.
func Jaccard(a, b []bool) (similarity float64, ok bool, err error) {
	if len(a) != len(b) {
		return 0, false, fmt.Errorf("jaccard: vector lengths differ (%d vs %d)", len(a), len(b))
	}

	var intersection, union int
	for i := range a {
		if a[i] || b[i] {
			union++
			if a[i] && b[i] {
				intersection++
			}
		}
	}
	if union == 0 {
		return 0, false, nil
	}
	return float64(intersection) / float64(union), true, nil
}

// TopJaccard scores every attribute column of m against the is_open column
// and returns the k highest, highest first. Ties keep attribute name order.
// Columns whose union with is_open is empty are left out of the ranking.
func TopJaccard(m *models.AttributeMatrix, k int) ([]models.AttributeScore, error) {
	if m == nil || m.Rows() == 0 {
		return nil, ErrEmptyResult
	}
	if len(m.Columns) != len(m.Values) {
		return nil, fmt.Errorf("attribute matrix has %d names for %d columns", len(m.Columns), len(m.Values))
	}

	scores := make([]models.AttributeScore, 0, len(m.Columns))
	for i, name := range m.Columns {
		sim, ok, err := Jaccard(m.Values[i], m.Open)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}
		if !ok {
			continue
		}
		scores = append(scores, models.AttributeScore{Attribute: name, Similarity: sim})
	}
	if len(scores) == 0 {
		return nil, ErrEmptyResult
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Similarity != scores[j].Similarity {
			return scores[i].Similarity > scores[j].Similarity
		}
		return scores[i].Attribute < scores[j].Attribute
	})

	if k > 0 && len(scores) > k {
		scores = scores[:k]
	}
	return scores, nil
}
