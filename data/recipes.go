// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/recipe-box/db"
	"github.com/danielhkuo/recipe-box/models"
)

// ErrRecordNotFound is returned when a lookup or delete matches no row.
var ErrRecordNotFound = errors.New("record not found")

// RecipeModel wraps a sql.DB connection pool.
// Every method runs exactly one statement.
type RecipeModel struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewRecipeModel(conn *sql.DB, dialect db.Dialect) RecipeModel {
	return RecipeModel{DB: conn, Dialect: dialect}
}

// List returns every recipe in the order the database yields them.
func (m RecipeModel) List(ctx context.Context) ([]models.Recipe, error) {
	rows, err := m.DB.QueryContext(ctx, `SELECT id, title, ingredients, method FROM recipes`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	recipes := []models.Recipe{}
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}

	return recipes, nil
}

// Get fetches a single recipe by id.
func (m RecipeModel) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	query := db.Rebind(m.Dialect, `SELECT id, title, ingredients, method FROM recipes WHERE id = ?`)

	recipe, err := scanRecipe(m.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, fmt.Errorf("failed to query recipe: %w", err)
		}
	}

	return &recipe, nil
}

// Insert stores a new recipe and returns the id assigned by the database.
func (m RecipeModel) Insert(ctx context.Context, input models.RecipeInput) (int64, error) {
	query := db.Rebind(m.Dialect, `
		INSERT INTO recipes (title, ingredients, method)
		VALUES (?, ?, ?)
		RETURNING id`)

	var id int64
	err := m.DB.QueryRowContext(ctx, query, nullable(input.Title), nullable(input.Ingredients), nullable(input.Method)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}

	return id, nil
}

// Update overwrites all three text fields of a recipe and reports how many
// rows changed. Updating a missing id is not an error.
func (m RecipeModel) Update(ctx context.Context, id int64, input models.RecipeInput) (int64, error) {
	query := db.Rebind(m.Dialect, `
		UPDATE recipes
		SET title = ?, ingredients = ?, method = ?
		WHERE id = ?`)

	result, err := m.DB.ExecContext(ctx, query, nullable(input.Title), nullable(input.Ingredients), nullable(input.Method), id)
	if err != nil {
		return 0, fmt.Errorf("failed to update recipe: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return n, nil
}

// Delete removes a recipe. It returns ErrRecordNotFound when no row matched.
func (m RecipeModel) Delete(ctx context.Context, id int64) error {
	query := db.Rebind(m.Dialect, `DELETE FROM recipes WHERE id = ?`)

	result, err := m.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrRecordNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanRecipe reads id, title, ingredients, method. NULL text reads as "".
func scanRecipe(s scanner) (models.Recipe, error) {
	var recipe models.Recipe
	var title, ingredients, method sql.NullString

	if err := s.Scan(&recipe.ID, &title, &ingredients, &method); err != nil {
		return models.Recipe{}, err
	}

	recipe.Title = title.String
	recipe.Ingredients = ingredients.String
	recipe.Method = method.String

	return recipe, nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
