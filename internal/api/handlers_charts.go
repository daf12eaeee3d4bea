// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/localescout/internal/analytics"
	"github.com/tomtom215/localescout/internal/chart"
	"github.com/tomtom215/localescout/internal/dashboard"
	"github.com/tomtom215/localescout/internal/database"
	"github.com/tomtom215/localescout/internal/middleware"
	"github.com/tomtom215/localescout/internal/validation"
)

// chartQuery reads ?tag=&city=&allow_empty= falling back to the configured
// defaults for blank values.
func (h *Handler) chartQuery(r *http.Request) validation.ChartQuery {
	q := r.URL.Query()
	defTag, defCity := h.svc.Defaults()
	return validation.ChartQuery{
		Tag:        validation.Text(q, "tag", defTag),
		City:       validation.Text(q, "city", defCity),
		AllowEmpty: validation.Flag(q, "allow_empty"),
	}
}

func (h *Handler) cityQuery(r *http.Request) validation.CityQuery {
	q := r.URL.Query()
	_, defCity := h.svc.Defaults()
	return validation.CityQuery{
		City:       validation.Text(q, "city", defCity),
		AllowEmpty: validation.Flag(q, "allow_empty"),
	}
}

// respondChart writes a chart result. With allowEmpty a missing tag or an
// empty selection yields a placeholder figure instead of an error.
func (h *Handler) respondChart(w http.ResponseWriter, r *http.Request, role chart.Role, c *dashboard.Chart, err error, allowEmpty bool, start time.Time) {
	if err != nil {
		placeholder := errors.Is(err, analytics.ErrEmptyResult) || errors.Is(err, database.ErrNoMatchingTag)
		if !allowEmpty || !placeholder {
			respondServiceError(w, r, err)
			return
		}
		c = &dashboard.Chart{Role: role, Figure: h.svc.Placeholder(role, err)}
	}
	respondSuccess(w, c, start, c.Cached)
}

// ChartTopTen handles GET /api/v1/charts/top-ten?tag=
func (h *Handler) ChartTopTen(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := h.chartQuery(r)
	tagReq := validation.TagQuery{Tag: req.Tag}
	if apiErr := validateRequest(&tagReq); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	c, err := h.svc.TopCities(r.Context(), middleware.GetSessionID(r.Context()), tagReq.Tag)
	h.respondChart(w, r, chart.RoleTopTen, c, err, req.AllowEmpty, start)
}

// ChartSimilarity handles GET /api/v1/charts/similarity?city=
func (h *Handler) ChartSimilarity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := h.cityQuery(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	c, err := h.svc.Similarity(r.Context(), req.City)
	h.respondChart(w, r, chart.RoleSimilarity, c, err, req.AllowEmpty, start)
}

// ChartGeo handles GET /api/v1/charts/geo?tag=&city=
func (h *Handler) ChartGeo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := h.chartQuery(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	c, err := h.svc.Geo(r.Context(), req.Tag, req.City)
	h.respondChart(w, r, chart.RoleGeo, c, err, req.AllowEmpty, start)
}

// ChartDensity handles GET /api/v1/charts/density?tag=&city=
func (h *Handler) ChartDensity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := h.chartQuery(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	c, err := h.svc.Density(r.Context(), req.Tag, req.City)
	h.respondChart(w, r, chart.RoleDensity, c, err, req.AllowEmpty, start)
}

// ChartSeasonality handles GET /api/v1/charts/seasonality?tag=&city=
func (h *Handler) ChartSeasonality(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := h.chartQuery(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	c, err := h.svc.Seasonality(r.Context(), req.Tag, req.City)
	h.respondChart(w, r, chart.RoleSeasonality, c, err, req.AllowEmpty, start)
}

// ChartReviewStars handles GET /api/v1/charts/review-stars?city=
func (h *Handler) ChartReviewStars(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := h.cityQuery(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	c, err := h.svc.ReviewStars(r.Context(), req.City)
	h.respondChart(w, r, chart.RoleReviewStars, c, err, req.AllowEmpty, start)
}

// Dashboard handles GET /api/v1/dashboard?tag=&city=
//
// All dashboard charts are built for one selection. An unknown tag fails the
// whole request with NO_MATCHING_TAG; a chart with no rows is returned as a
// placeholder figure.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := h.chartQuery(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	res, err := h.svc.Dashboard(r.Context(), middleware.GetSessionID(r.Context()), req.Tag, req.City)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, res, start, res.Cached)
}
