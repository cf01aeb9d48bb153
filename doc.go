// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Recipe Box web app.

Recipe Box keeps a single table of recipes (title, ingredients, method) and
serves HTML pages to browse, add, edit and delete them.

# Starting the Server

With no configuration it listens on :3318 and stores recipes in
./recipes.db (SQLite):

	go run .

Against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first if present.

On SIGINT or SIGTERM the server stops accepting connections and waits up to
10 seconds for in-flight requests before closing the database.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): Connection string (default: file:recipes.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - RATE_LIMIT (-rate), RATE_BURST (-burst): per-client rate limit
  - LOG_LEVEL (-log-level): slog level
  - TRUST_PROXY (-trust-proxy): rate limit by X-Forwarded-For / X-Real-IP
  - RECIPES_CONFIG (-config): YAML file for anything not set above

# Architecture

  - handlers: HTTP request handlers for recipes
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, errors, panics, rate limiting, CORS, JSON helpers
  - views: HTML templates and the Renderer interface
  - data: Recipe queries
  - models: Recipe and response types
  - db: Connections, placeholder rebinding, schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
