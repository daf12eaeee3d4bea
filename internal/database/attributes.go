// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tomtom215/localescout/internal/database/query"
	"github.com/tomtom215/localescout/internal/models"
)

// AttributeMatrix loads every business_attributes row for businesses in
// city, next to the business's is_open flag. Attribute columns are
// discovered from the result set; business_id and the excluded columns
// (compared case-insensitively) are dropped. Cells are coerced to bool and
// NULL reads as false.
func (db *DB) AttributeMatrix(ctx context.Context, city string, excluded []string) (*models.AttributeMatrix, error) {
	skip := map[string]bool{"business_id": true}
	for _, name := range excluded {
		skip[strings.ToLower(name)] = true
	}

	q := db.sb.
		Select("b.is_open", "ba.*").
		From("business b").
		Join(query.JoinAttributes).
		Where("b.city = ?", city).
		OrderBy("b.business_id")

	m := &models.AttributeMatrix{City: city}
	err := db.withRows(ctx, "attribute_matrix", "business_attributes", q, func(rows *sql.Rows) error {
		names, err := rows.Columns()
		if err != nil {
			return err
		}
		if len(names) < 2 {
			return fmt.Errorf("attribute query returned %d columns", len(names))
		}

		// keep maps matrix column -> result set index
		var keep []int
		for i := 1; i < len(names); i++ {
			if skip[strings.ToLower(names[i])] {
				continue
			}
			keep = append(keep, i)
			m.Columns = append(m.Columns, names[i])
		}
		m.Values = make([][]bool, len(keep))

		cells := make([]interface{}, len(names))
		ptrs := make([]interface{}, len(names))
		for i := range cells {
			ptrs[i] = &cells[i]
		}

		for rows.Next() {
			if err := rows.Scan(ptrs...); err != nil {
				return err
			}
			m.Open = append(m.Open, truthy(cells[0]))
			for col, idx := range keep {
				m.Values[col] = append(m.Values[col], truthy(cells[idx]))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// truthy coerces a scanned attribute cell to bool. Numbers are true when
// non-zero; strings when they read as true, yes, t, y or 1.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case int64:
		return t != 0
	case int32:
		return t != 0
	case int16:
		return t != 0
	case int8:
		return t != 0
	case int:
		return t != 0
	case uint64:
		return t != 0
	case uint32:
		return t != 0
	case uint16:
		return t != 0
	case uint8:
		return t != 0
	case float64:
		return t != 0
	case float32:
		return t != 0
	case []byte:
		return truthyString(string(t))
	case string:
		return truthyString(t)
	default:
		return false
	}
}

func truthyString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y", "1":
		return true
	}
	return false
}
