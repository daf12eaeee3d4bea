// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

// Package session keeps per-session dashboard state.
//
// The only state a session carries is the cleaned top-ten table for each tag
// it has looked at, so hovering between cities does not recount businesses.
// Entries expire after the configured TTL; a session never sees another
// session's tables.
package session

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tomtom215/localescout/internal/metrics"
	"github.com/tomtom215/localescout/internal/models"
)

const metricsName = "session_top_ten"

// TopTenStore caches top-ten rows per (session, tag).
type TopTenStore struct {
	c *gocache.Cache
}

// NewTopTenStore returns a store whose entries live for ttl. Expired entries
// are purged every cleanup interval.
func NewTopTenStore(ttl, cleanup time.Duration) *TopTenStore {
	return &TopTenStore{c: gocache.New(ttl, cleanup)}
}

func key(sessionID string, tagID int64) string {
	return sessionID + "|" + strconv.FormatInt(tagID, 10)
}

// Get returns a copy of the cached rows for the session and tag.
func (s *TopTenStore) Get(sessionID string, tagID int64) ([]models.CityCount, bool) {
	if sessionID == "" {
		return nil, false
	}
	v, ok := s.c.Get(key(sessionID, tagID))
	if !ok {
		metrics.RecordCacheLookup(metricsName, false)
		return nil, false
	}
	rows, ok := v.([]models.CityCount)
	metrics.RecordCacheLookup(metricsName, ok)
	if !ok {
		return nil, false
	}
	return append([]models.CityCount(nil), rows...), true
}

// Put stores a copy of rows for the session and tag. An empty session id is
// ignored.
func (s *TopTenStore) Put(sessionID string, tagID int64, rows []models.CityCount) {
	if sessionID == "" {
		return
	}
	s.c.SetDefault(key(sessionID, tagID), append([]models.CityCount(nil), rows...))
}

// Len returns the number of cached tables, including expired ones not yet
// purged.
func (s *TopTenStore) Len() int {
	return s.c.ItemCount()
}
