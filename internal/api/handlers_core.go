// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/localescout/internal/chart"
	"github.com/tomtom215/localescout/internal/models"
	"github.com/tomtom215/localescout/internal/validation"
)

// Categories handles GET /api/v1/categories?q=&limit=
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()
	req := validation.CategoryQuery{
		Search: strings.TrimSpace(q.Get("q")),
		Limit:  validation.Int(q, "limit", validation.DefaultCategories),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	tags, err := h.svc.Categories(r.Context(), req.Search, req.Limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, tags, start, false)
}

// ResolveTag handles GET /api/v1/tags/resolve?tag=
func (h *Handler) ResolveTag(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := validation.TagQuery{Tag: validation.Text(r.URL.Query(), "tag", "")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	tag, err := h.svc.ResolveTag(r.Context(), req.Tag)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, tag, start, false)
}

// MapSettings handles GET /api/v1/config/map
//
// The page needs the map token to render the geo and density charts, so it
// is served to the browser as-is.
func (h *Handler) MapSettings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defTag, defCity := h.svc.Defaults()

	settings := models.MapSettings{
		DefaultTag:  defTag,
		DefaultCity: defCity,
		Style:       chart.OpenStreetMapStyle,
		Zoom:        10,
	}
	if h.config != nil {
		m := h.config.Map
		settings.Token = m.Token
		if m.Token != "" && m.Style != "" {
			settings.Style = m.Style
		}
		if m.Zoom > 0 {
			settings.Zoom = m.Zoom
		}
	}
	respondSuccess(w, settings, start, false)
}
