// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string (default: file:recipes.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - RateLimit: Requests per second per client, 0 disables (default: 10)
  - RateBurst: Burst size for the rate limiter (default: 20)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-rate       Requests per second per client
	-burst      Rate limiter burst
	-log-level  Log level
	-config     YAML config file

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	RATE_LIMIT     → -rate
	RATE_BURST     → -burst
	LOG_LEVEL      → -log-level
	RECIPES_CONFIG → -config

# Config File

Anything still unset is read from the YAML file, if one was given:

	port: 8080
	database_type: postgres
	database_url: postgres://recipes@localhost/recipes?sslmode=disable
	rate_limit: 5
	rate_burst: 10
	log_level: debug

Precedence is flag > env > file > default.

# Validation

ParseFlags returns an error for an unparseable PORT, RATE_LIMIT or
RATE_BURST, a port outside 1-65535, a non-positive burst, an unknown log
level, or an unreadable config file.
*/
package cliparse
