// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

/*
Package supervisor runs the server's long-lived services under a suture
supervisor tree.

The tree has two layers below the root:

  - data: store health monitoring
  - api: the HTTP server

Each layer restarts its own services with suture's backoff, so a failing
store monitor never takes the HTTP server down with it. Supervisor events
are logged through sutureslog into the zerolog-backed slog logger.

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewStoreMonitor(db, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
