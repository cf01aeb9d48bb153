// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Dialects

Two backends are supported:

  - sqlite: modernc.org/sqlite (pure Go, default)
  - postgres: github.com/lib/pq

	dialect, err := db.ParseDialect(cfg.DatabaseType)

# Connecting

Open creates the pool and pings it:

	conn, err := db.Open(ctx, dialect, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

SQLite pools are limited to a single connection.

# Placeholders

Queries are written with '?' placeholders and passed through Rebind:

	db.Rebind(db.Postgres, "DELETE FROM recipes WHERE id = ?")
	// DELETE FROM recipes WHERE id = $1

Rebind is a no-op for SQLite.

# Schema Creation

CreateSchema creates the recipes table:

	if err := db.CreateSchema(conn, dialect); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

	recipes(id INTEGER PRIMARY KEY, title TEXT, ingredients TEXT, method TEXT)

Ids are assigned by the database and never reused.
*/
package db
