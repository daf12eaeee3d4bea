// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

// Package validation validates HTTP query parameters with
// go-playground/validator v10.
//
// A single validator instance is shared (it caches struct metadata). Field
// names in error messages come from the `query` struct tag, so a failure on
// ChartQuery.City reads "city is required" and matches the parameter the
// client sent.
//
// Custom tags:
//   - safetext: no control characters (tags and city names are plain text)
//
// Example:
//
//	req := validation.ChartQuery{Tag: r.URL.Query().Get("tag"), City: r.URL.Query().Get("city")}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
package validation
