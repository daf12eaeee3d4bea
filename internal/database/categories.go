// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/localescout/internal/database/query"
	"github.com/tomtom215/localescout/internal/metrics"
	"github.com/tomtom215/localescout/internal/models"
)

func scanTag(rows *sql.Rows) (models.Tag, error) {
	var t models.Tag
	err := rows.Scan(&t.ID, &t.Name)
	return t, err
}

// ResolveTag finds the category whose name contains tag, ignoring case.
//
// When several categories match, an exact case-insensitive match wins, then
// the shortest name, then the lowest category id. No match returns an error
// wrapping ErrNoMatchingTag.
func (db *DB) ResolveTag(ctx context.Context, tag string) (models.Tag, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return models.Tag{}, errors.New("tag is empty")
	}

	q := db.sb.
		Select("category_id", "category_name").
		From("category_ref").
		Where(query.ContainsFold("category_name", tag))

	matches, err := selectRows(ctx, db, "resolve_tag", "category_ref", q, scanTag)
	if err != nil {
		return models.Tag{}, err
	}
	if len(matches) == 0 {
		metrics.TagResolutionFailures.Inc()
		return models.Tag{}, fmt.Errorf("%w: %q", ErrNoMatchingTag, tag)
	}

	return bestTagMatch(tag, matches), nil
}

// bestTagMatch picks one tag out of several LIKE matches.
func bestTagMatch(tag string, matches []models.Tag) models.Tag {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		aExact, bExact := strings.EqualFold(a.Name, tag), strings.EqualFold(b.Name, tag)
		if aExact != bExact {
			return aExact
		}
		if len(a.Name) != len(b.Name) {
			return len(a.Name) < len(b.Name)
		}
		return a.ID < b.ID
	})
	return matches[0]
}

// ListCategories returns categories whose name contains search (all when
// search is empty), sorted by name, for the tag dropdown.
func (db *DB) ListCategories(ctx context.Context, search string, limit int) ([]models.Tag, error) {
	q := db.sb.
		Select("category_id", "category_name").
		From("category_ref").
		OrderBy("category_name")
	if s := strings.TrimSpace(search); s != "" {
		q = q.Where(query.ContainsFold("category_name", s))
	}
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	tags, err := selectRows(ctx, db, "list_categories", "category_ref", q, scanTag)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}
