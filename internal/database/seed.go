// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/tomtom215/localescout/internal/logging"
)

// Demo category ids.
const (
	demoRestaurants    = 1
	demoSeafood        = 2
	demoSeafoodMarkets = 3
	demoSushiBars      = 4
	demoBars           = 5
	demoCoffeeTea      = 6
)

var demoCategories = []struct {
	id   int
	name string
}{
	{demoRestaurants, "Restaurants"},
	{demoSeafood, "Seafood"},
	{demoSeafoodMarkets, "Seafood Markets"},
	{demoSushiBars, "Sushi Bars"},
	{demoBars, "Bars"},
	{demoCoffeeTea, "Coffee & Tea"},
}

// demoCities are ordered so city i has 12-i seafood businesses.
var demoCities = []struct {
	name     string
	lat, lon float64
}{
	{"Toronto", 43.6532, -79.3832},
	{"Las Vegas", 36.1699, -115.1398},
	{"Phoenix", 33.4484, -112.0740},
	{"Charlotte", 35.2271, -80.8431},
	{"Calgary", 51.0447, -114.0719},
	{"Pittsburgh", 40.4406, -79.9959},
	{"Montreal", 45.5017, -73.5673},
	{"Cleveland", 41.4993, -81.6944},
	{"Madison", 43.0731, -89.4012},
	{"Scottsdale", 33.4942, -111.9261},
	{"Henderson", 36.0395, -114.9817},
	{"Mesa", 33.4152, -111.8315},
}

type demoBusiness struct {
	id          string
	name        string
	city        string
	lat, lon    float64
	stars       float64
	reviewCount int
	open        bool
	j           int
}

// SeedDemo loads a small deterministic data set. It is a no-op when
// category_ref already has rows.
//
// City i of demoCities gets 12-i Seafood restaurants indexed j. Business j
// sits at (lat+0.01j, lon-0.01j), has 1+j%5 stars and 10(j+1) reviews, and
// is closed when j%3 == 2. Toronto also gets three coffee shops (j = 12..14)
// and three dated reviews per seafood business.
func (db *DB) SeedDemo(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var existing int
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM category_ref").Scan(&existing); err != nil {
		return fmt.Errorf("failed to check demo seed: %w", err)
	}
	if existing > 0 {
		logging.Debug().Int("categories", existing).Msg("Store already seeded")
		return nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin demo seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	businesses := demoBusinesses()

	categories := db.sb.Insert("category_ref").Columns("category_id", "category_name")
	for _, c := range demoCategories {
		categories = categories.Values(c.id, c.name)
	}

	biz := db.sb.Insert("business").
		Columns("business_id", "name", "city", "latitude", "longitude", "stars", "review_count", "is_open")
	links := db.sb.Insert("business_category").Columns("business_id", "category_id")

	attrCols := append([]string{"business_id"}, quoteAll(schemaAttributeColumns)...)
	attrs := db.sb.Insert("business_attributes").Columns(attrCols...)

	for _, b := range businesses {
		open := 0
		if b.open {
			open = 1
		}
		biz = biz.Values(b.id, b.name, b.city, b.lat, b.lon, b.stars, b.reviewCount, open)

		if b.city == demoCities[0].name && b.j >= 12 {
			links = links.Values(b.id, demoCoffeeTea)
		} else {
			links = links.Values(b.id, demoRestaurants).Values(b.id, demoSeafood)
		}

		attrs = attrs.Values(b.id,
			true,       // businessAcceptsBitcoin
			b.open,     // BikeParking
			!b.open,    // WiFi
			b.j%2 == 0, // OutdoorSeating
			true,       // RestaurantsDelivery
			b.j < 4,    // RestaurantsTakeOut
			false,      // GoodForKids
		)
	}

	inserts := []sq.InsertBuilder{categories, biz, links, attrs, demoReviews(db.sb, businesses)}
	for _, ins := range inserts {
		if err := execInsert(ctx, tx, ins); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit demo seed: %w", err)
	}

	logging.Info().
		Int("cities", len(demoCities)).
		Int("businesses", len(businesses)).
		Msg("Demo data seeded")
	return nil
}

func demoBusinesses() []demoBusiness {
	var out []demoBusiness
	for i, c := range demoCities {
		n := len(demoCities) - i
		if i == 0 {
			n += 3
		}
		for j := 0; j < n; j++ {
			kind := "Seafood"
			if j >= len(demoCities)-i {
				kind = "Coffee"
			}
			out = append(out, demoBusiness{
				id:          fmt.Sprintf("b%02d%02d", i, j),
				name:        fmt.Sprintf("%s %s %02d", c.name, kind, j),
				city:        c.name,
				lat:         c.lat + 0.01*float64(j),
				lon:         c.lon - 0.01*float64(j),
				stars:       float64(1 + j%5),
				reviewCount: 10 * (j + 1),
				open:        j%3 != 2,
				j:           j,
			})
		}
	}
	return out
}

// demoReviews gives every Toronto seafood business three reviews dated
// month (j+k)%9+1 of 2019 with 1+(j+k)%5 stars, and every other seafood
// business one January review.
func demoReviews(sb sq.StatementBuilderType, businesses []demoBusiness) sq.InsertBuilder {
	ins := sb.Insert("review").Columns("review_id", "business_id", "stars", "date")
	for _, b := range businesses {
		if b.city != demoCities[0].name {
			ins = ins.Values("r"+b.id+"0", b.id, b.stars, time.Date(2019, time.January, 15, 0, 0, 0, 0, time.UTC))
			continue
		}
		if b.j >= 12 {
			continue
		}
		for k := 0; k < 3; k++ {
			month := time.Month((b.j+k)%9 + 1)
			ins = ins.Values(
				fmt.Sprintf("r%s%d", b.id, k),
				b.id,
				float64(1+(b.j+k)%5),
				time.Date(2019, month, 15, 0, 0, 0, 0, time.UTC),
			)
		}
	}
	return ins
}

func execInsert(ctx context.Context, tx *sql.Tx, ins sq.InsertBuilder) error {
	stmt, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build seed insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}
	return nil
}

func quoteAll(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = fmt.Sprintf("%q", c)
	}
	return out
}
