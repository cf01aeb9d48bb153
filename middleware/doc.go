// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap the outermost handler with request logging:

	handler := middleware.WithLogging(middleware.RecoverPanic(mux).ServeHTTP)

Logs request start (method, path, remote) and completion (status,
duration_ms). Each request gets an X-Request-ID (a UUID unless the client
sent one), available to handlers via RequestID(r.Context()).

# Error Handling

Handlers that can fail return an error and are adapted with Handle:

	mux.HandleFunc("DELETE /recipes/{id}", middleware.Handle(recipeHandler.DeleteRecipe))

An *HTTPError is written as {"error": message} with its status. Any other
error is logged and answered with 500 {"error": "Internal Server Error"}.

RecoverPanic does the same for panics and closes the connection.

# Rate Limiting

Per-client token buckets (golang.org/x/time/rate), keyed by GetClientIP:

	limiter := middleware.NewRateLimiter(10, 20, cfg.TrustProxy)
	handler := limiter.Middleware(mux)

Clients over the limit get 429. Idle clients are dropped after a few minutes.
Clients are keyed by RemoteAddr; X-Forwarded-For and X-Real-IP are only
honoured when trustProxy is set.

# CORS Middleware

Enable cross-origin requests from any origin, without credentials:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Recipe not found")

	var input models.RecipeInput
	if err := middleware.ParseJSONBody(r, &input); err != nil {
		...
	}
*/
package middleware
