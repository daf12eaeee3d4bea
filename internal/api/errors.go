// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/localescout/internal/analytics"
	"github.com/tomtom215/localescout/internal/database"
	"github.com/tomtom215/localescout/internal/logging"
)

// Error codes returned in APIError.Code.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNoMatchingTag = "NO_MATCHING_TAG"
	CodeNoResults     = "NO_RESULTS"
	CodeUnavailable   = "SERVICE_UNAVAILABLE"
	CodeTimeout       = "TIMEOUT"
	CodeDatabase      = "DATABASE_ERROR"
	CodeNotFound      = "NOT_FOUND"
)

// classifyError maps a service error to status, code and client message.
func classifyError(err error) (int, string, string) {
	switch {
	case errors.Is(err, database.ErrNoMatchingTag):
		return http.StatusNotFound, CodeNoMatchingTag, "No category matches the requested tag"
	case errors.Is(err, analytics.ErrEmptyResult):
		return http.StatusNotFound, CodeNoResults, "No data for the requested selection"
	case errors.Is(err, database.ErrCircuitOpen):
		return http.StatusServiceUnavailable, CodeUnavailable, "The data store is temporarily unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeTimeout, "The query took too long"
	default:
		return http.StatusInternalServerError, CodeDatabase, "Failed to query the data store"
	}
}

// respondServiceError writes err using classifyError. Expected misses are
// logged at debug; everything else goes through respondError at error level.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		logging.Ctx(r.Context()).Debug().Msg("Client went away")
		return
	}

	status, code, message := classifyError(err)
	if status == http.StatusNotFound {
		logging.Ctx(r.Context()).Debug().Str("code", code).Str("error", sanitizeLogValue(err.Error())).Msg("No result")
		respondError(w, status, code, message, nil)
		return
	}
	respondError(w, status, code, message, err)
}
