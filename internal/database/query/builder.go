// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package query

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Table aliases shared by the store queries.
const (
	JoinCategory   = "business_category bc ON bc.business_id = b.business_id"
	JoinReview     = "review r ON r.business_id = b.business_id"
	JoinAttributes = "business_attributes ba ON ba.business_id = b.business_id"
)

// likeEscaper escapes the LIKE wildcards and the escape character itself.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Builder returns a statement builder using $n placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// EscapeLike escapes s so it matches literally inside a LIKE pattern
// declared with ESCAPE '\'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern returns the lower-cased "%s%" LIKE pattern for s.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(strings.ToLower(s)) + "%"
}

// ContainsFold matches rows whose column contains s, ignoring case.
func ContainsFold(column, s string) sq.Sqlizer {
	return sq.Expr("LOWER("+column+") LIKE ? ESCAPE '\\'", ContainsPattern(s))
}

// OpenInCity filters joined business rows to open businesses in city that
// carry the category tagID. It expects the b and bc aliases.
func OpenInCity(tagID int64, city string) sq.Sqlizer {
	return sq.And{
		sq.Eq{"bc.category_id": tagID},
		sq.Eq{"b.city": city},
		sq.Eq{"b.is_open": 1},
	}
}

// InCityWithTag is OpenInCity without the is_open filter.
func InCityWithTag(tagID int64, city string) sq.Sqlizer {
	return sq.And{
		sq.Eq{"b.city": city},
		sq.Eq{"bc.category_id": tagID},
	}
}
