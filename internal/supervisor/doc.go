// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

/*
Package supervisor runs Bytewise's long-lived services under a suture v4
supervisor tree.

Tree layout:

	bytewise (root)
	├── data-layer
	│   └── store-gc          Badger value log garbage collection
	├── catalog-layer
	│   └── catalog-reload    CSV → normalize → state store, on an interval
	└── api-layer
	    └── http-server       chi router

A service that returns an error is restarted with suture's backoff. Services
return ctx.Err() on shutdown so suture does not treat a clean stop as a
failure.

Supervisor events (restarts, backoff, panics) are logged through sutureslog
into the zerolog-backed slog adapter from the logging package:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	err = tree.Serve(ctx)

Service implementations live in the services subpackage.
*/
package supervisor
