// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/tomtom215/localescout/internal/config"
	"github.com/tomtom215/localescout/internal/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	db := NewWithConn(conn, &config.DatabaseConfig{Driver: config.DriverPostgres})
	t.Cleanup(func() { closeQuietly(conn) })
	return db, mock
}

func TestResolveTag_BindsPattern(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT category_id, category_name FROM category_ref WHERE LOWER(category_name) LIKE $1 ESCAPE '\'`)).
		WithArgs(`%100\% sea%`).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name"}))

	_, err := db.ResolveTag(context.Background(), "100% Sea")
	if !errors.Is(err, ErrNoMatchingTag) {
		t.Fatalf("err = %v, want ErrNoMatchingTag", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestResolveTag_PicksBestMatch(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("FROM category_ref").
		WithArgs("%pizza%").
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name"}).
			AddRow(40, "Pizza Delivery").
			AddRow(12, "Pizza").
			AddRow(7, "Pizzeria"))

	got, err := db.ResolveTag(context.Background(), "pizza")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != 12 {
		t.Errorf("got %+v, want the exact match Pizza", got)
	}
}

func TestBestTagMatch(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		matches []models.Tag
		wantID  int64
	}{
		{"exact wins over shorter", "Bar", []models.Tag{{ID: 1, Name: "Ba"}, {ID: 2, Name: "bar"}}, 2},
		{"shortest name", "sea", []models.Tag{{ID: 3, Name: "Seafood Markets"}, {ID: 2, Name: "Seafood"}}, 2},
		{"lowest id on equal length", "a", []models.Tag{{ID: 9, Name: "Bars"}, {ID: 4, Name: "Cafe"}}, 4},
		{"single", "x", []models.Tag{{ID: 5, Name: "Tex-Mex"}}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestTagMatch(tt.tag, tt.matches); got.ID != tt.wantID {
				t.Errorf("bestTagMatch() = %+v, want id %d", got, tt.wantID)
			}
		})
	}
}

func TestTopCities_QueryShape(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT b.city, COUNT(*) AS cnt FROM business b " +
			"JOIN business_category bc ON bc.business_id = b.business_id " +
			"WHERE bc.category_id = $1 GROUP BY b.city ORDER BY cnt DESC, b.city ASC LIMIT 10")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"city", "cnt"}).AddRow("Toronto", 412).AddRow("Las Vegas", 398))

	rows, err := db.TopCities(context.Background(), 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].City != "Toronto" || rows[0].Count != 412 {
		t.Errorf("rows = %+v", rows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestAttributeMatrix_Coercion(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("FROM business b JOIN business_attributes ba").
		WithArgs("Toronto").
		WillReturnRows(sqlmock.NewRows([]string{"is_open", "business_id", "businessacceptsbitcoin", "WiFi", "Caters"}).
			AddRow(int64(1), "a", true, "yes", nil).
			AddRow(int64(0), "b", true, "no", []byte("True")).
			AddRow(int64(1), "c", false, "1", int64(0)))

	m, err := db.AttributeMatrix(context.Background(), "Toronto", []string{"businessAcceptsBitcoin"})
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Columns) != 2 || m.Columns[0] != "WiFi" || m.Columns[1] != "Caters" {
		t.Fatalf("columns = %v", m.Columns)
	}
	wantOpen := []bool{true, false, true}
	wantWiFi := []bool{true, false, true}
	wantCaters := []bool{false, true, false}
	for i := range wantOpen {
		if m.Open[i] != wantOpen[i] || m.Values[0][i] != wantWiFi[i] || m.Values[1][i] != wantCaters[i] {
			t.Errorf("row %d: open=%v wifi=%v caters=%v", i, m.Open[i], m.Values[0][i], m.Values[1][i])
		}
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   interface{}
		want bool
	}{
		{nil, false},
		{true, true},
		{false, false},
		{int64(1), true},
		{int32(0), false},
		{int8(2), true},
		{uint8(1), true},
		{1.0, true},
		{float32(0), false},
		{"true", true},
		{" Yes ", true},
		{"t", true},
		{"False", false},
		{"u'free'", false},
		{[]byte("1"), true},
		{struct{}{}, false},
	}
	for _, tt := range tests {
		if got := truthy(tt.in); got != tt.want {
			t.Errorf("truthy(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBreaker_OpensAfterRepeatedFailures(t *testing.T) {
	db, mock := newMockDB(t)

	for i := 0; i < 10; i++ {
		mock.ExpectQuery("FROM business b").WillReturnError(errors.New("connection refused"))
	}
	for i := 0; i < 10; i++ {
		if _, err := db.TopCities(context.Background(), 2, 10); err == nil {
			t.Fatalf("call %d: expected store error", i)
		}
	}

	_, err := db.TopCities(context.Background(), 2, 10)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("err = %v, want ErrCircuitOpen", err)
	}
	if db.BreakerState() != "open" {
		t.Errorf("state = %s, want open", db.BreakerState())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBreaker_IgnoresCanceledRequests(t *testing.T) {
	db, _ := newMockDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 15; i++ {
		if _, err := db.TopCities(ctx, 2, 10); !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	}
	if db.BreakerState() != "closed" {
		t.Errorf("state = %s, want closed", db.BreakerState())
	}
}
