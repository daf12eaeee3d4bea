// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

// Package cache provides the TTL cache for chart query results.
//
// The store is read-only on request paths, so a geo, density, seasonality
// or similarity result for a given (tag, city) stays valid until the TTL
// runs out. Keys are built with GenerateKey from a method name and its
// parameters.
//
// Concurrent misses for the same key are collapsed with singleflight, so a
// burst of identical dashboard requests runs the query once:
//
//	c := cache.New("charts", 5*time.Minute)
//	defer c.Close()
//
//	key := cache.GenerateKey("geo", map[string]interface{}{"tag": tag.ID, "city": city})
//	rows, cached, err := cache.Load(ctx, c, key, func(ctx context.Context) ([]models.GeoBusiness, error) {
//	    return store.OpenBusinessesGeo(ctx, tag.ID, city)
//	})
//
// Hits and misses are exported as cache_hits_total and cache_misses_total
// with the cache name as label.
package cache
