// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB, dialect Dialect) error {
	schema, ok := schemas[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	_, err := conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Ids must never be handed out twice, even after the highest row is
// deleted, hence AUTOINCREMENT rather than a plain rowid alias.
var schemas = map[Dialect]string{
	SQLite: `
-- Recipes
CREATE TABLE IF NOT EXISTS recipes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT,
    ingredients TEXT,
    method TEXT
);
`,
	Postgres: `
-- Recipes
CREATE TABLE IF NOT EXISTS recipes (
    id BIGSERIAL PRIMARY KEY,
    title TEXT,
    ingredients TEXT,
    method TEXT
);
`,
}
