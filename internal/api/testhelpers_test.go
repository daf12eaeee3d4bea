// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/localescout/internal/cache"
	"github.com/tomtom215/localescout/internal/chart"
	"github.com/tomtom215/localescout/internal/config"
	"github.com/tomtom215/localescout/internal/dashboard"
	"github.com/tomtom215/localescout/internal/database"
	"github.com/tomtom215/localescout/internal/middleware"
	"github.com/tomtom215/localescout/internal/models"
	"github.com/tomtom215/localescout/internal/session"
)

// envelope mirrors models.APIResponse with the payload left raw.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

type chartPayload struct {
	Role   chart.Role   `json:"role"`
	Figure chart.Figure `json:"figure"`
	Cached bool         `json:"cached"`
}

func testConfig() *config.Config {
	return &config.Config{
		Map: config.MapConfig{Zoom: 11},
		Analytics: config.AnalyticsConfig{
			DefaultTag:         "Seafood",
			DefaultCity:        "Toronto",
			ExcludedAttributes: []string{"businessAcceptsBitcoin"},
		},
	}
}

func newDemoStore(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(&config.DatabaseConfig{
		Driver:       config.DriverDuckDB,
		Path:         ":memory:",
		SeedDemo:     true,
		MaxOpenConns: 4,
		MaxIdleConns: 2,
		QueryTimeout: 10 * time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to open demo store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestHandler(t *testing.T, store dashboard.Store, status StoreStatus, cfg *config.Config) *Handler {
	t.Helper()
	queries := cache.New("api_test", time.Minute)
	t.Cleanup(queries.Close)

	svc := dashboard.New(
		store,
		chart.NewBuilder(chart.MapOptions{Token: cfg.Map.Token, Style: cfg.Map.Style, Zoom: cfg.Map.Zoom}),
		session.NewTopTenStore(time.Minute, time.Minute),
		queries,
		dashboard.Options{
			DefaultTag:         cfg.Analytics.DefaultTag,
			DefaultCity:        cfg.Analytics.DefaultCity,
			ExcludedAttributes: cfg.Analytics.ExcludedAttributes,
		},
	)
	return NewHandler(svc, status, cfg)
}

// newTestServer returns the full router over the seeded demo store.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	db := newDemoStore(t)
	h := newTestHandler(t, db, db, testConfig())

	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.RateLimitDisabled = true
	return NewRouter(h, NewChiMiddleware(mwCfg), middleware.SessionOptions{}).SetupChi()
}

func doGet(t *testing.T, h http.Handler, path string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if ct := rec.Header().Get("Content-Type"); ct == "application/json" {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("GET %s: invalid JSON: %v\n%s", path, err, rec.Body.String())
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v\n%s", err, env.Data)
	}
}

// stubStatus is a StoreStatus with fixed answers.
type stubStatus struct {
	pingErr error
	driver  string
	breaker string
}

func (s stubStatus) Ping(context.Context) error { return s.pingErr }
func (s stubStatus) Driver() string             { return s.driver }
func (s stubStatus) BreakerState() string       { return s.breaker }
