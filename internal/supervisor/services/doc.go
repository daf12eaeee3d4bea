// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

/*
Package services adapts Localescout components to suture's Serve pattern.

HTTPServerService wraps *http.Server: ListenAndServe runs in a goroutine and
context cancellation triggers Shutdown with a bounded timeout.

StoreMonitor pings the analytics store on an interval, publishes the pool's
open connection count to Prometheus and logs health transitions. It returns
only when its context ends, so suture never restarts it for a failing ping.
*/
package services
