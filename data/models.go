// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package data provides the database access layer for recipes.
package data

import (
	"database/sql"

	"github.com/danielhkuo/recipe-box/db"
)

// Models groups the data models handed to the HTTP layer.
type Models struct {
	Recipes RecipeModel
}

func NewModels(conn *sql.DB, dialect db.Dialect) Models {
	return Models{
		Recipes: NewRecipeModel(conn, dialect),
	}
}
