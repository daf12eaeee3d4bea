// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

// Package dashboard turns a (tag, city) selection into chart figures.
//
// Every tag-scoped chart resolves the tag first; when no category matches,
// the error is returned before any dependent query runs. The full dashboard
// then builds its five charts concurrently under the request context.
package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/localescout/internal/analytics"
	"github.com/tomtom215/localescout/internal/cache"
	"github.com/tomtom215/localescout/internal/chart"
	"github.com/tomtom215/localescout/internal/database"
	"github.com/tomtom215/localescout/internal/logging"
	"github.com/tomtom215/localescout/internal/metrics"
	"github.com/tomtom215/localescout/internal/models"
	"github.com/tomtom215/localescout/internal/session"
)

// Store is the read side of the business/review store.
type Store interface {
	ResolveTag(ctx context.Context, tag string) (models.Tag, error)
	ListCategories(ctx context.Context, search string, limit int) ([]models.Tag, error)
	TopCities(ctx context.Context, tagID int64, limit int) ([]models.CityCount, error)
	AttributeMatrix(ctx context.Context, city string, excluded []string) (*models.AttributeMatrix, error)
	OpenBusinessesGeo(ctx context.Context, tagID int64, city string) ([]models.GeoBusiness, error)
	OpenBusinessesDensity(ctx context.Context, tagID int64, city string) ([]models.DensityBusiness, error)
	MonthlyReviewCounts(ctx context.Context, tagID int64, city string) ([]models.MonthCount, error)
	ReviewStarTotals(ctx context.Context, city string) ([]models.StarTotal, error)
}

// Options tunes the service.
type Options struct {
	TopN               int
	TopK               int
	ExcludedAttributes []string
	DefaultTag         string
	DefaultCity        string
}

// Chart is one rendered figure.
type Chart struct {
	Role   chart.Role    `json:"role"`
	Figure *chart.Figure `json:"figure"`
	Cached bool          `json:"cached"`
}

// Result is the full dashboard for one selection.
type Result struct {
	Tag    models.Tag                   `json:"tag"`
	City   string                       `json:"city"`
	Charts map[chart.Role]*chart.Figure `json:"charts"`
	Cached bool                         `json:"cached"`
}

// Service builds dashboard charts.
type Service struct {
	store    Store
	charts   *chart.Builder
	sessions *session.TopTenStore
	queries  *cache.Cache
	opts     Options
}

// New returns a Service. Zero TopN/TopK fall back to 10 and 5.
func New(store Store, charts *chart.Builder, sessions *session.TopTenStore, queries *cache.Cache, opts Options) *Service {
	if opts.TopN <= 0 {
		opts.TopN = 10
	}
	if opts.TopK <= 0 {
		opts.TopK = 5
	}
	return &Service{
		store:    store,
		charts:   charts,
		sessions: sessions,
		queries:  queries,
		opts:     opts,
	}
}

// Defaults returns the tag and city used when a request leaves them out.
func (s *Service) Defaults() (tag, city string) {
	return s.opts.DefaultTag, s.opts.DefaultCity
}

func (s *Service) withDefaults(tag, city string) (string, string) {
	tag, city = strings.TrimSpace(tag), strings.TrimSpace(city)
	if tag == "" {
		tag = s.opts.DefaultTag
	}
	if city == "" {
		city = s.opts.DefaultCity
	}
	return tag, city
}

// CacheStatus reports the query cache counters and the number of cached
// session top-ten tables.
func (s *Service) CacheStatus() models.CacheStatus {
	var cs models.CacheStatus
	if s.queries != nil {
		stats := s.queries.GetStats()
		cs.QueryHits = stats.Hits
		cs.QueryMisses = stats.Misses
		cs.QueryKeys = stats.TotalKeys
		cs.QueryHitRate = s.queries.HitRate()
	}
	if s.sessions != nil {
		cs.SessionTables = s.sessions.Len()
	}
	return cs
}

// Placeholder renders an empty figure for role explaining err.
func (s *Service) Placeholder(role chart.Role, err error) *chart.Figure {
	msg := "No data for this selection"
	switch {
	case errors.Is(err, database.ErrNoMatchingTag):
		msg = "No category matches this tag"
	case errors.Is(err, analytics.ErrEmptyResult) && role == chart.RoleSimilarity:
		msg = "No attributes to compare in this city"
	case errors.Is(err, analytics.ErrEmptyResult):
		msg = "No open businesses match this selection"
	}
	return s.charts.Empty(role, msg)
}

// ResolveTag resolves tag against category_ref, caching successful lookups.
func (s *Service) ResolveTag(ctx context.Context, tag string) (models.Tag, error) {
	tag, _ = s.withDefaults(tag, "")
	key := cache.GenerateKey("tag", strings.ToLower(tag))
	t, _, err := cache.Load(ctx, s.queries, key, func(ctx context.Context) (models.Tag, error) {
		return s.store.ResolveTag(ctx, tag)
	})
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("tag", tag).Msg("Tag resolution failed")
	}
	return t, err
}

// Categories lists categories for the tag dropdown.
func (s *Service) Categories(ctx context.Context, search string, limit int) ([]models.Tag, error) {
	return s.store.ListCategories(ctx, search, limit)
}

// TopCities renders the top-ten chart for tag. The ranked table is cached
// per session and tag.
func (s *Service) TopCities(ctx context.Context, sessionID, tag string) (*Chart, error) {
	t, err := s.ResolveTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	return s.timed(chart.RoleTopTen, func() (*Chart, error) { return s.topTen(ctx, sessionID, t) })
}

// Similarity renders the attributes most associated with being open in city.
func (s *Service) Similarity(ctx context.Context, city string) (*Chart, error) {
	_, city = s.withDefaults("", city)
	return s.timed(chart.RoleSimilarity, func() (*Chart, error) { return s.similarity(ctx, city) })
}

// Geo renders the open businesses for tag in city on a scatter map.
func (s *Service) Geo(ctx context.Context, tag, city string) (*Chart, error) {
	t, city, err := s.resolveSelection(ctx, tag, city)
	if err != nil {
		return nil, err
	}
	return s.timed(chart.RoleGeo, func() (*Chart, error) { return s.geo(ctx, t, city) })
}

// Density renders the review density heatmap for tag in city.
func (s *Service) Density(ctx context.Context, tag, city string) (*Chart, error) {
	t, city, err := s.resolveSelection(ctx, tag, city)
	if err != nil {
		return nil, err
	}
	return s.timed(chart.RoleDensity, func() (*Chart, error) { return s.density(ctx, t, city) })
}

// Seasonality renders review counts per month for tag in city.
func (s *Service) Seasonality(ctx context.Context, tag, city string) (*Chart, error) {
	t, city, err := s.resolveSelection(ctx, tag, city)
	if err != nil {
		return nil, err
	}
	return s.timed(chart.RoleSeasonality, func() (*Chart, error) { return s.seasonality(ctx, t, city) })
}

// ReviewStars renders how reviews in city split across star values.
func (s *Service) ReviewStars(ctx context.Context, city string) (*Chart, error) {
	_, city = s.withDefaults("", city)
	return s.timed(chart.RoleReviewStars, func() (*Chart, error) { return s.reviewStars(ctx, city) })
}

// Dashboard renders every dashboard role for one selection. The tag is
// resolved first; then the charts are built concurrently and the first
// failure cancels the others. A role with no rows gets a placeholder figure
// instead of failing the dashboard.
func (s *Service) Dashboard(ctx context.Context, sessionID, tag, city string) (*Result, error) {
	t, city, err := s.resolveSelection(ctx, tag, city)
	if err != nil {
		return nil, err
	}

	builders := map[chart.Role]func(context.Context) (*Chart, error){
		chart.RoleTopTen:      func(ctx context.Context) (*Chart, error) { return s.topTen(ctx, sessionID, t) },
		chart.RoleSimilarity:  func(ctx context.Context) (*Chart, error) { return s.similarity(ctx, city) },
		chart.RoleGeo:         func(ctx context.Context) (*Chart, error) { return s.geo(ctx, t, city) },
		chart.RoleDensity:     func(ctx context.Context) (*Chart, error) { return s.density(ctx, t, city) },
		chart.RoleSeasonality: func(ctx context.Context) (*Chart, error) { return s.seasonality(ctx, t, city) },
	}

	res := &Result{
		Tag:    t,
		City:   city,
		Charts: make(map[chart.Role]*chart.Figure, len(builders)),
		Cached: true,
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, role := range chart.DashboardRoles {
		role, build := role, builders[role]
		g.Go(func() error {
			c, err := s.timed(role, func() (*Chart, error) { return build(gctx) })
			if errors.Is(err, analytics.ErrEmptyResult) {
				c, err = &Chart{Role: role, Figure: s.Placeholder(role, err)}, nil
			}
			if err != nil {
				return err
			}

			mu.Lock()
			res.Charts[role] = c.Figure
			res.Cached = res.Cached && c.Cached
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Int64("tag_id", t.ID).
		Str("city", city).
		Bool("cached", res.Cached).
		Msg("Dashboard built")
	return res, nil
}

func (s *Service) resolveSelection(ctx context.Context, tag, city string) (models.Tag, string, error) {
	tag, city = s.withDefaults(tag, city)
	t, err := s.ResolveTag(ctx, tag)
	if err != nil {
		return models.Tag{}, "", err
	}
	return t, city, nil
}

// timed records the build duration and outcome of one role.
func (s *Service) timed(role chart.Role, build func() (*Chart, error)) (*Chart, error) {
	start := time.Now()
	c, err := build()
	metrics.RecordChartBuild(string(role), time.Since(start), err)
	return c, err
}

func (s *Service) topTen(ctx context.Context, sessionID string, t models.Tag) (*Chart, error) {
	if rows, ok := s.sessions.Get(sessionID, t.ID); ok {
		return &Chart{Role: chart.RoleTopTen, Figure: s.charts.TopTen(t, rows), Cached: true}, nil
	}

	rows, err := s.store.TopCities(ctx, t.ID, s.opts.TopN)
	if err != nil {
		return nil, err
	}
	rows = analytics.RankCities(rows, s.opts.TopN)
	if len(rows) == 0 {
		return nil, analytics.ErrEmptyResult
	}
	s.sessions.Put(sessionID, t.ID, rows)

	return &Chart{Role: chart.RoleTopTen, Figure: s.charts.TopTen(t, rows)}, nil
}

func (s *Service) similarity(ctx context.Context, city string) (*Chart, error) {
	key := cache.GenerateKey("similarity", map[string]interface{}{"city": city, "k": s.opts.TopK})
	scores, cached, err := cache.Load(ctx, s.queries, key, func(ctx context.Context) ([]models.AttributeScore, error) {
		m, err := s.store.AttributeMatrix(ctx, city, s.opts.ExcludedAttributes)
		if err != nil {
			return nil, err
		}
		return analytics.TopJaccard(m, s.opts.TopK)
	})
	if err != nil {
		return nil, err
	}
	return &Chart{Role: chart.RoleSimilarity, Figure: s.charts.Similarity(city, scores), Cached: cached}, nil
}

func (s *Service) geo(ctx context.Context, t models.Tag, city string) (*Chart, error) {
	key := cache.GenerateKey("geo", map[string]interface{}{"tag": t.ID, "city": city})
	res, cached, err := cache.Load(ctx, s.queries, key, func(ctx context.Context) (*models.GeoResult, error) {
		rows, err := s.store.OpenBusinessesGeo(ctx, t.ID, city)
		if err != nil {
			return nil, err
		}
		center, err := analytics.GeoCentroid(rows)
		if err != nil {
			return nil, err
		}
		return &models.GeoResult{City: city, Tag: t, Businesses: rows, Center: center}, nil
	})
	if err != nil {
		return nil, err
	}
	return &Chart{Role: chart.RoleGeo, Figure: s.charts.Geo(res), Cached: cached}, nil
}

func (s *Service) density(ctx context.Context, t models.Tag, city string) (*Chart, error) {
	key := cache.GenerateKey("density", map[string]interface{}{"tag": t.ID, "city": city})
	res, cached, err := cache.Load(ctx, s.queries, key, func(ctx context.Context) (*models.DensityResult, error) {
		rows, err := s.store.OpenBusinessesDensity(ctx, t.ID, city)
		if err != nil {
			return nil, err
		}
		center, maxCount, err := analytics.DensitySummary(rows)
		if err != nil {
			return nil, err
		}
		return &models.DensityResult{City: city, Tag: t, Businesses: rows, Center: center, MaxReviewCount: maxCount}, nil
	})
	if err != nil {
		return nil, err
	}
	return &Chart{Role: chart.RoleDensity, Figure: s.charts.Density(res), Cached: cached}, nil
}

func (s *Service) seasonality(ctx context.Context, t models.Tag, city string) (*Chart, error) {
	key := cache.GenerateKey("seasonality", map[string]interface{}{"tag": t.ID, "city": city})
	months, cached, err := cache.Load(ctx, s.queries, key, func(ctx context.Context) ([]models.MonthCount, error) {
		rows, err := s.store.MonthlyReviewCounts(ctx, t.ID, city)
		if err != nil {
			return nil, err
		}
		return analytics.FillMonths(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return &Chart{Role: chart.RoleSeasonality, Figure: s.charts.Seasonality(months), Cached: cached}, nil
}

func (s *Service) reviewStars(ctx context.Context, city string) (*Chart, error) {
	key := cache.GenerateKey("review_stars", city)
	totals, cached, err := cache.Load(ctx, s.queries, key, func(ctx context.Context) ([]models.StarTotal, error) {
		rows, err := s.store.ReviewStarTotals(ctx, city)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, analytics.ErrEmptyResult
		}
		return analytics.SortStarTotals(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return &Chart{Role: chart.RoleReviewStars, Figure: s.charts.ReviewStars(city, totals), Cached: cached}, nil
}
