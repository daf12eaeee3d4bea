// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package validation

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter bounds.
const (
	MaxTextLength     = 100
	MaxCategoryLimit  = 500
	DefaultCategories = 50
)

// TagQuery is ?tag= for endpoints scoped to a category tag.
type TagQuery struct {
	Tag string `query:"tag" validate:"required,min=1,max=100,safetext"`
}

// CityQuery is ?city= for endpoints scoped to a city.
type CityQuery struct {
	City       string `query:"city" validate:"required,min=1,max=100,safetext"`
	AllowEmpty bool   `query:"allow_empty"`
}

// ChartQuery is ?tag=&city= for charts scoped to both.
type ChartQuery struct {
	Tag        string `query:"tag" validate:"required,min=1,max=100,safetext"`
	City       string `query:"city" validate:"required,min=1,max=100,safetext"`
	AllowEmpty bool   `query:"allow_empty"`
}

// CategoryQuery is ?q=&limit= for the category dropdown.
type CategoryQuery struct {
	Search string `query:"q" validate:"omitempty,max=100,safetext"`
	Limit  int    `query:"limit" validate:"min=1,max=500"`
}

// Text returns the trimmed value of key, or fallback when it is blank.
func Text(q url.Values, key, fallback string) string {
	if v := strings.TrimSpace(q.Get(key)); v != "" {
		return v
	}
	return fallback
}

// Flag parses a boolean parameter. Missing or unparsable values are false.
func Flag(q url.Values, key string) bool {
	b, err := strconv.ParseBool(q.Get(key))
	return err == nil && b
}

// Int parses an integer parameter, returning fallback when it is missing.
// An unparsable value returns -1 so range validation rejects it.
func Int(q url.Values, key string, fallback int) int {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}
