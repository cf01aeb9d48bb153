// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the recipe app.

# Route Registration

NewRouter returns the full handler, middleware included:

	handler := router.NewRouter(data.NewModels(conn, dialect), cfg, renderer)

# Endpoints

Health:

	GET /health

Pages (HTML via the renderer):

	GET /               - Home
	GET /recipes        - All recipes
	GET /recipes/{id}   - One recipe (rendered without one if no match)

Mutations:

	POST   /recipes            - Create, 302 to /recipes
	POST   /recipes/{id}/edit  - Update, 302 to /recipes/{id}
	DELETE /recipes/{id}       - Delete, 200 or 404 JSON

# Middleware

From the outside in:

	WithLogging → RecoverPanic → rate limiter → CORS → mux → Handle → handler

Every response, 429s and recovered panics included, carries X-Request-ID
and gets a "request completed" log line.

Other methods on registered paths get 405 from the mux.
*/
package router
