// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package analytics

import "errors"

// ErrEmptyResult is returned when an aggregation has no rows to work on.
var ErrEmptyResult = errors.New("no rows to aggregate")
