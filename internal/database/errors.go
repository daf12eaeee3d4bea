// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/localescout/internal/logging"
)

var (
	// ErrNoMatchingTag is returned when no category name contains the
	// requested tag. Callers must not run tag-scoped queries after it.
	ErrNoMatchingTag = errors.New("no matching tag")

	// ErrCircuitOpen is returned while the query circuit breaker rejects
	// calls after repeated store failures.
	ErrCircuitOpen = errors.New("store circuit breaker is open")
)

// closeWithLog closes a resource and logs any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource on an error path where the Close error is
// not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
