// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package analytics

import (
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/localescout/internal/models"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []bool
		want   float64
		wantOK bool
	}{
		{"identical", []bool{true, false, true, true}, []bool{true, false, true, true}, 1.0, true},
		{"disjoint", []bool{true, false, true, false}, []bool{false, true, false, true}, 0.0, true},
		{"partial", []bool{true, true, false, false}, []bool{true, false, true, false}, 1.0 / 3.0, true},
		{"subset", []bool{true, true, true, false}, []bool{true, false, false, false}, 1.0 / 3.0, true},
		{"all false", []bool{false, false}, []bool{false, false}, 0, false},
		{"empty vectors", []bool{}, []bool{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := Jaccard(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Jaccard() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("Jaccard() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJaccard_LengthMismatch(t *testing.T) {
	if _, _, err := Jaccard([]bool{true}, []bool{true, false}); err == nil {
		t.Fatal("expected error for vectors of different length")
	}
}

func TestJaccard_Symmetric(t *testing.T) {
	a := []bool{true, false, true, true, false, true}
	b := []bool{false, false, true, true, true, false}
	ab, _, _ := Jaccard(a, b)
	ba, _, _ := Jaccard(b, a)
	if !almostEqual(ab, ba) {
		t.Errorf("Jaccard not symmetric: %v vs %v", ab, ba)
	}
}

func sampleMatrix() *models.AttributeMatrix {
	open := []bool{true, true, false, true, false, true}
	not := func(v []bool) []bool {
		out := make([]bool, len(v))
		for i := range v {
			out[i] = !v[i]
		}
		return out
	}
	return &models.AttributeMatrix{
		City: "Toronto",
		Open: open,
		Columns: []string{
			"WiFi", "BikeParking", "DogsAllowed", "GoodForKids",
			"OutdoorSeating", "RestaurantsDelivery", "Caters",
		},
		Values: [][]bool{
			not(open),                                  // 0.0
			open,                                       // 1.0
			{false, false, false, false, false, false}, // 0.0 (union = open)
			{true, true, true, true, true, true},       // 4/6
			{true, true, false, false, false, false},   // 2/4
			{true, true, false, true, false, false},    // 3/4
			{false, true, false, true, false, true},    // 3/4
		},
	}
}

func TestTopJaccard(t *testing.T) {
	scores, err := TopJaccard(sampleMatrix(), 5)
	if err != nil {
		t.Fatalf("TopJaccard() error = %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("len(scores) = %d, want 5", len(scores))
	}

	want := []models.AttributeScore{
		{Attribute: "BikeParking", Similarity: 1.0},
		{Attribute: "Caters", Similarity: 0.75},
		{Attribute: "RestaurantsDelivery", Similarity: 0.75},
		{Attribute: "GoodForKids", Similarity: 4.0 / 6.0},
		{Attribute: "OutdoorSeating", Similarity: 0.5},
	}
	for i := range want {
		if scores[i].Attribute != want[i].Attribute || !almostEqual(scores[i].Similarity, want[i].Similarity) {
			t.Errorf("scores[%d] = %+v, want %+v", i, scores[i], want[i])
		}
	}

	for i := 1; i < len(scores); i++ {
		if scores[i].Similarity > scores[i-1].Similarity {
			t.Errorf("scores not descending at %d: %v > %v", i, scores[i].Similarity, scores[i-1].Similarity)
		}
	}
}

func TestTopJaccard_ExcludesZeroUnion(t *testing.T) {
	m := &models.AttributeMatrix{
		Open:    []bool{false, false, false},
		Columns: []string{"Never", "Sometimes"},
		Values: [][]bool{
			{false, false, false},
			{true, false, false},
		},
	}
	scores, err := TopJaccard(m, 5)
	if err != nil {
		t.Fatalf("TopJaccard() error = %v", err)
	}
	if len(scores) != 1 || scores[0].Attribute != "Sometimes" || scores[0].Similarity != 0 {
		t.Errorf("scores = %+v, want only Sometimes with 0", scores)
	}
}

func TestTopJaccard_FewerColumnsThanK(t *testing.T) {
	m := &models.AttributeMatrix{
		Open:    []bool{true, false},
		Columns: []string{"A", "B"},
		Values:  [][]bool{{true, false}, {true, true}},
	}
	scores, err := TopJaccard(m, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Errorf("len(scores) = %d, want 2", len(scores))
	}
}

func TestTopJaccard_Empty(t *testing.T) {
	if _, err := TopJaccard(&models.AttributeMatrix{}, 5); !errors.Is(err, ErrEmptyResult) {
		t.Errorf("err = %v, want ErrEmptyResult", err)
	}
	if _, err := TopJaccard(nil, 5); !errors.Is(err, ErrEmptyResult) {
		t.Errorf("nil matrix err = %v, want ErrEmptyResult", err)
	}

	allZero := &models.AttributeMatrix{
		Open:    []bool{false},
		Columns: []string{"A"},
		Values:  [][]bool{{false}},
	}
	if _, err := TopJaccard(allZero, 5); !errors.Is(err, ErrEmptyResult) {
		t.Errorf("all-zero-union err = %v, want ErrEmptyResult", err)
	}
}

func TestTopJaccard_MismatchedColumns(t *testing.T) {
	m := &models.AttributeMatrix{
		Open:    []bool{true},
		Columns: []string{"A", "B"},
		Values:  [][]bool{{true}},
	}
	if _, err := TopJaccard(m, 5); err == nil {
		t.Fatal("expected error for mismatched column names")
	}
}

func TestGeoCentroid(t *testing.T) {
	t.Run("single row equals the row", func(t *testing.T) {
		c, err := GeoCentroid([]models.GeoBusiness{{Name: "Pier 4", Latitude: 43.6426, Longitude: -79.3871, Stars: 4}})
		if err != nil {
			t.Fatal(err)
		}
		if c.Latitude != 43.6426 || c.Longitude != -79.3871 {
			t.Errorf("centroid = %+v", c)
		}
	})

	t.Run("bounding box midpoint", func(t *testing.T) {
		rows := []models.GeoBusiness{
			{Latitude: 43.60, Longitude: -79.50},
			{Latitude: 43.70, Longitude: -79.30},
			{Latitude: 43.61, Longitude: -79.31},
			{Latitude: 43.69, Longitude: -79.49},
		}
		c, err := GeoCentroid(rows)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(c.Latitude, 43.65) || !almostEqual(c.Longitude, -79.40) {
			t.Errorf("centroid = %+v, want (43.65, -79.40)", c)
		}
	})

	t.Run("empty is an explicit error", func(t *testing.T) {
		c, err := GeoCentroid(nil)
		if !errors.Is(err, ErrEmptyResult) {
			t.Fatalf("err = %v, want ErrEmptyResult", err)
		}
		if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
			t.Error("centroid must never be NaN")
		}
	})

	t.Run("NaN coordinate rejected", func(t *testing.T) {
		_, err := GeoCentroid([]models.GeoBusiness{{Latitude: math.NaN(), Longitude: 1}})
		if err == nil {
			t.Fatal("expected error for NaN coordinate")
		}
	})
}

func TestDensitySummary(t *testing.T) {
	rows := []models.DensityBusiness{
		{Name: "a", Latitude: 36.10, Longitude: -115.20, ReviewCount: 40},
		{Name: "b", Latitude: 36.20, Longitude: -115.10, ReviewCount: 310},
		{Name: "c", Latitude: 36.15, Longitude: -115.15, ReviewCount: 7},
	}
	center, maxCount, err := DensitySummary(rows)
	if err != nil {
		t.Fatal(err)
	}
	if maxCount != 310 {
		t.Errorf("maxCount = %d, want 310", maxCount)
	}
	if !almostEqual(center.Latitude, 36.15) || !almostEqual(center.Longitude, -115.15) {
		t.Errorf("center = %+v", center)
	}

	if _, _, err := DensitySummary(nil); !errors.Is(err, ErrEmptyResult) {
		t.Errorf("empty err = %v, want ErrEmptyResult", err)
	}
}

func TestFillMonths(t *testing.T) {
	sparse := []models.MonthCount{
		{Month: 3, Count: 10},
		{Month: 1, Count: 4},
		{Month: 12, Count: 2},
		{Month: 0, Count: 99},
		{Month: 13, Count: 99},
		{Month: 3, Count: 1},
	}
	got := FillMonths(sparse)

	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	want := map[int]int64{1: 4, 3: 11, 12: 2}
	for i, row := range got {
		if row.Month != i+1 {
			t.Errorf("row %d month = %d, want %d", i, row.Month, i+1)
		}
		if row.Label != MonthLabels[i] {
			t.Errorf("row %d label = %q", i, row.Label)
		}
		if row.Count != want[row.Month] {
			t.Errorf("month %d count = %d, want %d", row.Month, row.Count, want[row.Month])
		}
	}
}

func TestFillMonths_Empty(t *testing.T) {
	got := FillMonths(nil)
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	for _, row := range got {
		if row.Count != 0 {
			t.Errorf("month %d count = %d, want 0", row.Month, row.Count)
		}
	}
}

func TestRankCities(t *testing.T) {
	rows := make([]models.CityCount, 0, 14)
	for i := 0; i < 14; i++ {
		rows = append(rows, models.CityCount{City: string(rune('A' + i)), Count: int64(i % 7)})
	}
	ranked := RankCities(rows, 10)
	if len(ranked) != 10 {
		t.Fatalf("len = %d, want 10", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		if cur.Count > prev.Count || (cur.Count == prev.Count && cur.City < prev.City) {
			t.Errorf("rank order broken at %d: %+v after %+v", i, cur, prev)
		}
	}
	if ranked[0].City != "G" || ranked[1].City != "N" {
		t.Errorf("top two = %s,%s, want G,N", ranked[0].City, ranked[1].City)
	}
	if rows[0].City != "A" {
		t.Error("input slice was modified")
	}

	if got := RankCities(rows[:3], 10); len(got) != 3 {
		t.Errorf("short input len = %d, want 3", len(got))
	}
}

func TestSortStarTotals(t *testing.T) {
	got := SortStarTotals([]models.StarTotal{{Stars: 5, Count: 1}, {Stars: 1, Count: 9}, {Stars: 3, Count: 4}})
	for i, want := range []float64{1, 3, 5} {
		if got[i].Stars != want {
			t.Errorf("got[%d].Stars = %v, want %v", i, got[i].Stars, want)
		}
	}
}
